package sound

import "github.com/ayoisaiah/cadence/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errSoundNotFound = &apperr.Error{
		Message: "sound %q not found in %s",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode %s",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise speaker",
	}
)
