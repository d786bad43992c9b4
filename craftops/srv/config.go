package srv

// Config ...
type Config struct {
	Name    string
	Address string

	// BedrockAddress is the optional Geyser endpoint of the server,
	// pinged over RakNet when set.
	BedrockAddress string
}
