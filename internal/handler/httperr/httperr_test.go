//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"pitch-booking/internal/handler/httperr"
	"pitch-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.Validation("bad slot"), http.StatusBadRequest},
		{"wrapped validation", errs.Wrap(errs.Validation("bad slot"), "create booking"), http.StatusBadRequest},
		{"not found", errs.NotFound("booking not found"), http.StatusNotFound},
		{"permission", errs.Permission("not yours"), http.StatusForbidden},
		{"unmarked", errs.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}
