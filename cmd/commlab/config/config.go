package config

import (
	"os"
	"time"

	"CommLab/internel/logging"
	"CommLab/pkg/modem"
	"CommLab/pkg/mux"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log logging.Config `yaml:"log"`

	Output struct {
		Path   string `yaml:"path"`
		Format string `yaml:"format"` // txt, bin or pcm
	} `yaml:"output"`

	Wave struct {
		Kind         string  `yaml:"kind"`
		Frequency    float64 `yaml:"frequency"`
		Amplitude    float64 `yaml:"amplitude"`
		Phase        float64 `yaml:"phase"`
		Points       int     `yaml:"points"`
		EndFrequency float64 `yaml:"end_frequency"`
	} `yaml:"wave"`

	LineCode struct {
		Bits   string `yaml:"bits"`
		Scheme string `yaml:"scheme"`
	} `yaml:"line_code"`

	Modulation struct {
		Kind             string  `yaml:"kind"`
		CarrierAmplitude float64 `yaml:"carrier_amplitude"`
		CarrierFreq      float64 `yaml:"carrier_freq"`
		MessageAmplitude float64 `yaml:"message_amplitude"`
		MessageFreq      float64 `yaml:"message_freq"`
		Kf               float64 `yaml:"kf"`
		Kp               float64 `yaml:"kp"`
		Points           int     `yaml:"points"`
		Bits             string  `yaml:"bits"`
		SamplesPerBit    int     `yaml:"samples_per_bit"`
		Depth            float64 `yaml:"depth"`
	} `yaml:"modulation"`

	Filter struct {
		Window         int     `yaml:"window"`
		NoiseLevel     float64 `yaml:"noise_level"`
		NoiseAmplitude float64 `yaml:"noise_amplitude"`
		Seed           uint64  `yaml:"seed"`
		Points         int     `yaml:"points"`
	} `yaml:"filter"`

	Channel struct {
		Bandwidth   float64 `yaml:"bandwidth"`
		Levels      int     `yaml:"levels"`
		SNRdB       float64 `yaml:"snr_db"`
		SignalPower float64 `yaml:"signal_power"`
		NoisePower  float64 `yaml:"noise_power"`

		DataMB        float64 `yaml:"data_mb"`
		BandwidthMbps float64 `yaml:"bandwidth_mbps"`
		DistanceKm    float64 `yaml:"distance_km"`
		SpeedKmPerS   float64 `yaml:"speed_km_per_s"`
	} `yaml:"channel"`

	TDM struct {
		SlotSize      int           `yaml:"slot_size"`
		PulseStuffing bool          `yaml:"pulse_stuffing"`
		FrameInterval time.Duration `yaml:"frame_interval"`
		TravelDelay   time.Duration `yaml:"travel_delay"`
		Scale         float64       `yaml:"scale"`
		Senders       []mux.Sender  `yaml:"senders"`
	} `yaml:"tdm"`

	FDM struct {
		GuardBand   float64      `yaml:"guard_band"`
		BaseFreq    float64      `yaml:"base_freq"`
		Points      int          `yaml:"points"`
		ShiftByBand bool         `yaml:"shift_by_band"`
		Senders     []mux.Sender `yaml:"senders"`
	} `yaml:"fdm"`

	Transmission struct {
		Mode   string        `yaml:"mode"`
		Data   string        `yaml:"data"`
		Travel time.Duration `yaml:"travel"`
	} `yaml:"transmission"`
}

// Default mirrors the starting values of each page of the lab.
func Default() *Config {
	var c Config
	c.Log.Level = "info"
	c.Output.Format = "txt"

	c.Wave.Kind = "sine"
	c.Wave.Frequency = 1
	c.Wave.Amplitude = 1
	c.Wave.Points = 100
	c.Wave.EndFrequency = 10

	c.LineCode.Bits = "01001100011"
	c.LineCode.Scheme = "nrz-l"

	c.Modulation.Kind = "AM"
	c.Modulation.CarrierAmplitude = 1
	c.Modulation.CarrierFreq = 10
	c.Modulation.MessageAmplitude = 0.5
	c.Modulation.MessageFreq = 1
	c.Modulation.Kf = modem.DefaultKf
	c.Modulation.Kp = modem.DefaultKp
	c.Modulation.Points = 500
	c.Modulation.Bits = "10110"
	c.Modulation.SamplesPerBit = 100
	c.Modulation.Depth = 0.5

	c.Filter.Window = 5
	c.Filter.NoiseLevel = 0.5
	c.Filter.NoiseAmplitude = 0.3
	c.Filter.Seed = 1
	c.Filter.Points = 500

	c.Channel.Bandwidth = 3000
	c.Channel.Levels = 2
	c.Channel.SNRdB = 30
	c.Channel.SignalPower = 10
	c.Channel.NoisePower = 1
	c.Channel.DataMB = 10
	c.Channel.BandwidthMbps = 100
	c.Channel.DistanceKm = 1000
	c.Channel.SpeedKmPerS = 200000

	c.TDM.SlotSize = 1
	c.TDM.FrameInterval = mux.DefaultTimeline.FrameInterval
	c.TDM.TravelDelay = mux.DefaultTimeline.TravelDelay
	c.TDM.Scale = 1
	c.TDM.Senders = []mux.Sender{
		{ID: 1, Name: "Sender 1", Payload: "HELLO", Color: "#6366f1"},
		{ID: 2, Name: "Sender 2", Payload: "WORLD", Color: "#ec4899"},
		{ID: 3, Name: "Sender 3", Payload: "TDM", Color: "#10b981"},
	}

	c.FDM.GuardBand = 10
	c.FDM.Points = 500
	c.FDM.Senders = []mux.Sender{
		{ID: 1, Name: "Voice", Bandwidth: 40, Amplitude: 1, Equation: "sin(t)"},
		{ID: 2, Name: "Music", Bandwidth: 60, Amplitude: 1, Equation: "0.5sin(3t)"},
		{ID: 3, Name: "Data", Bandwidth: 30, Amplitude: 1, Equation: "0.8cos(5t)"},
	}

	c.Transmission.Mode = "serial"
	c.Transmission.Data = "10110011"
	c.Transmission.Travel = 2 * time.Second
	return &c
}

// LoadConfig reads filename over the defaults; keys left out keep their
// default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
