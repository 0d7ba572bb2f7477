package emulator

import (
	"github.com/BurntSushi/toml"
)

// FragmentConfig places one storage fragment in the machine address
// space. Kind selects the device: "ram" is writable storage, "rom" is
// storage whose guest stores are discarded, "console" is the output
// device. The data image loads into the first "rom" fragment, or the
// first fragment when no rom is configured.
type FragmentConfig struct {
	Key  string `toml:"key"`
	Kind string `toml:"kind"`
	Base uint32 `toml:"base"`
	Size uint32 `toml:"size"`
}

// Config describes a machine. MaxTicks of zero runs unbounded;
// otherwise the processor is terminated after that many ticks.
type Config struct {
	MaxTicks  uint64           `toml:"max_ticks"`
	Fragments []FragmentConfig `toml:"fragment"`
}

// DefaultConfig returns the standard machine: rom at the bottom of the
// address space, ram above it, and the console bank above that.
func DefaultConfig() *Config {
	return &Config{
		Fragments: []FragmentConfig{
			{Key: "rom", Kind: "rom", Base: 0x0000, Size: 0x4000},
			{Key: "ram", Kind: "ram", Base: 0x4000, Size: 0x4000},
			{Key: "console", Kind: "console", Base: 0x8000, Size: CONSOLE_SIZE},
		},
	}
}

// LoadConfig reads a machine description from a TOML file.
func LoadConfig(path string) (config *Config, err error) {
	config = &Config{}
	_, err = toml.DecodeFile(path, config)
	if err != nil {
		return nil, err
	}
	if len(config.Fragments) == 0 {
		config.Fragments = DefaultConfig().Fragments
	}

	return
}
