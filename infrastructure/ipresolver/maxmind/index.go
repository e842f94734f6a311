package maxmind

import (
	"net"
	"os"

	"github.com/oschwald/maxminddb-golang"
	"vaultline.io/infrastructure/ipresolver/types"
	"vaultline.io/infrastructure/logger"
)

var db *maxminddb.Reader

type MaxMindIPResolver struct{}

func (mmResolver *MaxMindIPResolver) ConnectToDB() {
	path := os.Getenv("MAXMIND_DB_PATH")
	if path == "" {
		logger.Warning("maxmind db path not set, login geolocation disabled")
		return
	}
	var err error
	db, err = maxminddb.Open(path)
	if err != nil {
		logger.Error("could not connect to mmdb", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	logger.Info("connected to maxmind db successfully")
}

type maxmindLookupResult struct {
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Location struct {
		Longitude      float64 `maxminddb:"longitude"`
		Latitude       float64 `maxminddb:"latitude"`
		AccuracyRadius int     `maxminddb:"accuracy_radius"`
	} `maxminddb:"location"`
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

func (mmResolver *MaxMindIPResolver) LookUp(ipAddress string) (*types.IPResult, error) {
	if db == nil {
		return &types.IPResult{IPAddress: ipAddress}, nil
	}
	ip := net.ParseIP(ipAddress)
	var result maxmindLookupResult
	err := db.Lookup(ip, &result)
	if err != nil {
		return nil, err
	}
	return &types.IPResult{
		Longitude:     result.Location.Longitude,
		Latitude:      result.Location.Latitude,
		City:          result.City.Names["en"],
		CountryCode:   result.Country.ISOCode,
		AcuracyRadius: result.Location.AccuracyRadius,
		IPAddress:     ipAddress,
	}, nil
}
