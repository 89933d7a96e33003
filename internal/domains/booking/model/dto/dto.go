package dto

import (
	"time"

	"cove/internal/domains/booking/model"
	"cove/shared"
	gDto "cove/shared/dto"
	gModel "cove/shared/model"
	"cove/shared/timezone"

	"github.com/google/uuid"
)

const stayDateFormat = "2006-01-02"

type CreateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required"`
	GuestName     string `json:"guest_name"     validate:"required,max=100"`
	GuestEmail    string `json:"guest_email"    validate:"omitempty,email,max=100"`
	GuestPhone    string `json:"guest_phone"    validate:"omitempty,max=20"`
	CheckIn       string `json:"check_in"       validate:"required"`
	CheckOut      string `json:"check_out"      validate:"required"`
	Adults        int    `json:"adults"         validate:"required,min=1"`
	Children      int    `json:"children"       validate:"omitempty,min=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card transfer cash"`
}

// Stay parses the requested dates. Check-in is inclusive, check-out exclusive.
func (c *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(stayDateFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(stayDateFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(userID, user string, totalPrice float64, status string) (model.Booking, error) {
	checkIn, checkOut, err := c.Stay()
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		UserID:        userID,
		GuestName:     c.GuestName,
		GuestEmail:    c.GuestEmail,
		GuestPhone:    c.GuestPhone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        c.Adults,
		Children:      c.Children,
		TotalPrice:    totalPrice,
		Status:        status,
		PaymentStatus: model.PaymentStatusPending,
		PaymentMethod: c.PaymentMethod,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled completed"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	UserID        string  `json:"user_id"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	GuestPhone    string  `json:"guest_phone"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckIn = model.CheckIn.Format(stayDateFormat)
	r.CheckOut = model.CheckOut.Format(stayDateFormat)
	r.Adults = model.Adults
	r.Children = model.Children
	r.Nights = Nights(model)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.PaymentMethod = model.PaymentMethod
	r.Metadata.FromModel(model.Metadata)
}

func Nights(b model.Booking) int {
	return model.Nights(b.CheckIn, b.CheckOut)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

func (a *AvailabilityRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(stayDateFormat, a.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(stayDateFormat, a.CheckOut)

	return checkIn, checkOut, err
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type StatsBucket struct {
	Bucket   string  `json:"bucket"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// BookingStatsResponse carries per-bucket counts plus grand totals. The totals
// come from an independent reduction, not from summing the buckets.
type BookingStatsResponse struct {
	Period        string        `json:"period"`
	Start         string        `json:"start"`
	End           string        `json:"end"`
	Buckets       []StatsBucket `json:"buckets"`
	TotalBookings int           `json:"total_bookings"`
	TotalRevenue  float64       `json:"total_revenue"`
}

func (r *BookingStatsResponse) FromRows(rows []model.StatsRow, totals model.StatsTotals) {
	r.Buckets = make([]StatsBucket, len(rows))
	for i, row := range rows {
		r.Buckets[i] = StatsBucket{
			Bucket:   row.Bucket,
			Bookings: row.Bookings,
			Revenue:  row.Revenue,
		}
	}

	r.TotalBookings = totals.Bookings
	r.TotalRevenue = totals.Revenue
}
