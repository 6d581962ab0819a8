package domain

// SoundStatus is a read-only snapshot of a sound session, used by the console and ssh endpoints
type SoundStatus struct {
	Backend        Backend
	BankCursors    []int
	LastTrack      uint16
	RandomArmed    bool
	RandomDueIn    int32
	RandomHi       uint16
	RandomLo       uint16
	RandomMaxDelay uint32
	RandomMinDelay uint32
	RandomMode     RandomMode
	StartupTrack   int
	Volume         Volume
}
