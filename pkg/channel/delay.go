package channel

import (
	"fmt"
	"time"

	"CommLab/pkg/commerr"
)

var (
	ErrSpeed    = fmt.Errorf("%w: propagation speed must be positive", commerr.ErrDomain)
	ErrDistance = fmt.Errorf("%w: distance must not be negative", commerr.ErrDomain)
	ErrDataSize = fmt.Errorf("%w: data size must not be negative", commerr.ErrDomain)
)

// PropagationDelay is distance/speed, in the time unit implied by the speed.
func PropagationDelay(distance, speed float64) (float64, error) {
	if speed <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrSpeed, speed)
	}
	if distance < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrDistance, distance)
	}
	return distance / speed, nil
}

// TransmissionDelay is the time to push dataBits onto a link of bandwidthBps.
func TransmissionDelay(dataBits, bandwidthBps float64) (float64, error) {
	if bandwidthBps <= 0 {
		return 0, fmt.Errorf("%w: bandwidth must be positive, got %v", commerr.ErrDomain, bandwidthBps)
	}
	if dataBits < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrDataSize, dataBits)
	}
	return dataBits / bandwidthBps, nil
}

// Latency splits the end-to-end delay in seconds. Queuing and processing are
// not modelled.
type Latency struct {
	Transmission float64
	Propagation  float64
}

func (l Latency) Total() float64 {
	return l.Transmission + l.Propagation
}

func (l Latency) Duration() time.Duration {
	return time.Duration(l.Total() * float64(time.Second))
}

// Link is the calculator page: a payload in megabytes over a link in Mbps
// across a distance in km at a speed in km/s.
type Link struct {
	DataMB        float64
	BandwidthMbps float64
	DistanceKm    float64
	SpeedKmPerS   float64
}

func (l Link) Latency() (Latency, error) {
	tx, err := TransmissionDelay(MegabytesToBits(l.DataMB), MbpsToBps(l.BandwidthMbps))
	if err != nil {
		return Latency{}, err
	}
	prop, err := PropagationDelay(l.DistanceKm, l.SpeedKmPerS)
	if err != nil {
		return Latency{}, err
	}
	return Latency{Transmission: tx, Propagation: prop}, nil
}

// MegabytesToBits uses decimal megabytes.
func MegabytesToBits(mb float64) float64 {
	return mb * 8 * 1000 * 1000
}

func MbpsToBps(mbps float64) float64 {
	return mbps * 1000 * 1000
}
