package aladhan

// Response is the envelope of the Al Adhan timings endpoints.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

type Data struct {
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
	Meta    Meta     `json:"meta"`
}

// Timings holds the "HH:MM" values returned by the API. Values may carry a
// zone annotation such as " (+07)".
type Timings struct {
	Fajr     string `json:"Fajr"`
	Sunrise  string `json:"Sunrise"`
	Dhuhr    string `json:"Dhuhr"`
	Asr      string `json:"Asr"`
	Sunset   string `json:"Sunset"`
	Maghrib  string `json:"Maghrib"`
	Isha     string `json:"Isha"`
	Imsak    string `json:"Imsak"`
	Midnight string `json:"Midnight"`
}

// Five returns the daily prayers in Subuh..Isya order.
func (t Timings) Five() [5]string {
	return [5]string{t.Fajr, t.Dhuhr, t.Asr, t.Maghrib, t.Isha}
}

type DateInfo struct {
	Readable  string `json:"readable"`
	Timestamp string `json:"timestamp"`
	Hijri     struct {
		Date string `json:"date"`
	} `json:"hijri"`
}

type Meta struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Method    MethodInfo `json:"method"`
}

type MethodInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
