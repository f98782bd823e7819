package request

import "pitch-booking/internal/domain/club"

type UpdateClubRequest struct {
	Name                *string         `json:"name" binding:"omitempty,min=1,max=255"`
	Description         *string         `json:"description" binding:"omitempty,max=2000"`
	Address             *string         `json:"address" binding:"omitempty,max=255"`
	Latitude            *string         `json:"latitude" binding:"omitempty,decimal"`
	Longitude           *string         `json:"longitude" binding:"omitempty,decimal"`
	OpenTime            *string         `json:"open_time" binding:"omitempty,timeofday"`
	CloseTime           *string         `json:"close_time" binding:"omitempty,timeofday"`
	WorkingDays         map[string]bool `json:"working_days" binding:"omitempty,workingdays"`
	Logo                *string         `json:"logo" binding:"omitempty,max=255"`
	FlexibleReservation *bool           `json:"flexible_reservation"`
}

func (r UpdateClubRequest) ToDomain() (club.Update, error) {
	u := club.Update{
		Name:                r.Name,
		Description:         r.Description,
		Address:             r.Address,
		Logo:                r.Logo,
		FlexibleReservation: r.FlexibleReservation,
	}
	var err error
	if u.Latitude, err = parseDecimalPtr(r.Latitude); err != nil {
		return u, err
	}
	if u.Longitude, err = parseDecimalPtr(r.Longitude); err != nil {
		return u, err
	}
	if u.OpenTime, err = parseTimeOfDayPtr(r.OpenTime); err != nil {
		return u, err
	}
	if u.CloseTime, err = parseTimeOfDayPtr(r.CloseTime); err != nil {
		return u, err
	}
	if r.WorkingDays != nil {
		wd, err := club.ParseWorkingDays(r.WorkingDays)
		if err != nil {
			return u, err
		}
		u.WorkingDays = &wd
	}
	return u, nil
}

