package internal

// EnvPrefix is a prefix of ENV variables related
// to the container configuration.
const EnvPrefix = "amphora"

// EnvSeparator is a section separator in ENV variables.
const EnvSeparator = "_"
