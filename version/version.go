package version

// BuildVersion is set at link time.
var BuildVersion = "<version>"
