package types

type IPResult struct {
	IPAddress     string  `json:"ipAddress"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
	City          string  `json:"city"`
	CountryCode   string  `json:"countryCode"`
	AcuracyRadius int     `json:"accuracyRadius"`
}

type IPResolver interface {
	ConnectToDB()
	LookUp(ipAddress string) (*IPResult, error)
}
