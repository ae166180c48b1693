package shared

type ClientConfig struct {
	API      APIConfig      `mapstructure:"api" validate:"required"`
	Location LocationConfig `mapstructure:"location"`
}

type APIConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// LocationConfig holds the coordinates reported to the backend when an SOS
// is triggered. There is no geolocation hardware on a terminal, so the
// user pins their usual area in the config file instead.
type LocationConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}
