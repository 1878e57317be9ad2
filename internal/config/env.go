package config

import "strings"

// audio.default_volume -> TAMP_AUDIO_DEFAULT_VOLUME
var envKeyReplacer = strings.NewReplacer(".", "_")
