package packets

// query for /prayer-times/location; both coordinates or neither
type LocationQuery struct {
	Lat    *float64 `form:"lat"`
	Lng    *float64 `form:"lng"`
	Method int      `form:"method"`
}

// query for /prayer-times/city
type CityQuery struct {
	City    string `form:"city"    binding:"required"`
	Country string `form:"country"`
	Method  int    `form:"method"`
}
