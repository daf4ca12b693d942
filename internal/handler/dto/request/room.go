package request

type AvailabilityQuery struct {
	CheckInDate  string `form:"check_in_date" binding:"required"`
	CheckOutDate string `form:"check_out_date" binding:"required"`
}
