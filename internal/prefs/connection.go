package prefs

// Connection and printer settings. Key names are inherited from the
// original client.

const (
	keyLocalURL    = "LocalIP"
	keyOnlineURL   = "OnlineIP"
	keyNetworkType = "NetworkType"
	keySelectedURL = "SelectedIP"
	keyPrinter     = "default_printer"
)

// NetworkConfig is the saved connection choice: a local and an online base
// URL plus which of the two is in use.
type NetworkConfig struct {
	LocalURL    string
	OnlineURL   string
	NetworkType string
	SelectedURL string
}

// NetworkConfig returns the saved connection settings.
func (s *Store) NetworkConfig() NetworkConfig {
	return NetworkConfig{
		LocalURL:    s.Get(keyLocalURL, "http://192.168.1.2:3000"),
		OnlineURL:   s.Get(keyOnlineURL, ""),
		NetworkType: s.Get(keyNetworkType, "Local Network"),
		SelectedURL: s.Get(keySelectedURL, ""),
	}
}

// SaveNetworkConfig commits validated connection settings.
func (s *Store) SaveNetworkConfig(cfg NetworkConfig) error {
	for key, value := range map[string]string{
		keyLocalURL:    cfg.LocalURL,
		keyOnlineURL:   cfg.OnlineURL,
		keyNetworkType: cfg.NetworkType,
		keySelectedURL: cfg.SelectedURL,
	} {
		if err := s.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// ServerURL is the base URL the API client should use, or def when no
// connection settings have been saved yet.
func (s *Store) ServerURL(def string) string {
	if url := s.Get(keySelectedURL, ""); url != "" {
		return url
	}
	return def
}

// DefaultPrinter returns the saved printer in "Name|MAC" format (older
// installs stored the bare name).
func (s *Store) DefaultPrinter() string {
	return s.Get(keyPrinter, "")
}

func (s *Store) SetDefaultPrinter(nameAndMAC string) error {
	return s.Set(keyPrinter, nameAndMAC)
}
