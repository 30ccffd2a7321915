package parameter

import "time"

// Audio Hardware Settings
const (
	// AudioSampleRate for the speaker and all generated tones
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Spawn Tone
const (
	// SpawnToneDuration is the length of the ripple-spawn tone
	SpawnToneDuration = 25 * time.Millisecond

	// SpawnToneAttack / SpawnToneRelease shape the tone envelope so the
	// short burst doesn't click
	SpawnToneAttack  = 2 * time.Millisecond
	SpawnToneRelease = 8 * time.Millisecond

	// SpawnToneVolume is the linear amplitude of spawn tones
	SpawnToneVolume = 0.25
)
