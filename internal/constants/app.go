package constants

// ApplicationName names the binary, its default config directory and its User-Agent product token.
const ApplicationName = "iothub-httpapi"
