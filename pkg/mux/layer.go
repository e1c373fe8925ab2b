package mux

import (
	"encoding/binary"
	"fmt"
	"math"

	"CommLab/pkg/bits"
	"CommLab/pkg/commerr"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Wire layout of a TDM frame:
//
//	Tick (2 bytes) | Count (1 byte) | Count × slot | CRC-8 (1 byte)
//	slot: Sender (1 byte) | Flags (1 byte) | Length (1 byte) | Data
//
// The CRC covers every byte before it.
const (
	tdmHeaderLen  = 3
	tdmSlotHeader = 3
	tdmTrailerLen = 1

	slotFlagStuffed = 0x01
)

var (
	ErrTruncated = fmt.Errorf("%w: tdm frame truncated", commerr.ErrDomain)
	ErrChecksum  = fmt.Errorf("%w: tdm frame CRC8 mismatch", commerr.ErrDomain)
	ErrTooLarge  = fmt.Errorf("%w: tdm frame field out of range", commerr.ErrDomain)
)

var LayerTypeTDMFrame = gopacket.RegisterLayerType(1720, gopacket.LayerTypeMetadata{
	Name:    "TDMFrame",
	Decoder: gopacket.DecodeFunc(decodeTDMFrame),
})

// TDMFrame is the on-channel form of a Frame.
type TDMFrame struct {
	layers.BaseLayer
	Tick  uint16
	Slots []Slot
	CRC   uint8
}

func (f *TDMFrame) LayerType() gopacket.LayerType { return LayerTypeTDMFrame }

func (f *TDMFrame) CanDecode() gopacket.LayerClass { return LayerTypeTDMFrame }

func (f *TDMFrame) NextLayerType() gopacket.LayerType { return gopacket.LayerTypeZero }

func (f *TDMFrame) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < tdmHeaderLen+tdmTrailerLen {
		df.SetTruncated()
		return fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	f.Tick = binary.BigEndian.Uint16(data[0:2])
	count := int(data[2])

	f.Slots = make([]Slot, 0, count)
	off := tdmHeaderLen
	for i := 0; i < count; i++ {
		if off+tdmSlotHeader > len(data)-tdmTrailerLen {
			df.SetTruncated()
			return fmt.Errorf("%w: slot %d header", ErrTruncated, i)
		}
		sender, flags, n := data[off], data[off+1], int(data[off+2])
		off += tdmSlotHeader
		if off+n > len(data)-tdmTrailerLen {
			df.SetTruncated()
			return fmt.Errorf("%w: slot %d data", ErrTruncated, i)
		}
		f.Slots = append(f.Slots, Slot{
			Sender:  int(sender),
			Data:    string(data[off : off+n]),
			Stuffed: flags&slotFlagStuffed != 0,
		})
		off += n
	}

	f.CRC = data[off]
	if want := bits.CRC8(data[:off]); want != f.CRC {
		return fmt.Errorf("%w: got %#02x, want %#02x", ErrChecksum, f.CRC, want)
	}
	off += tdmTrailerLen
	f.BaseLayer = layers.BaseLayer{Contents: data[:off], Payload: data[off:]}
	return nil
}

func (f *TDMFrame) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if len(f.Slots) > math.MaxUint8 {
		return fmt.Errorf("%w: %d slots", ErrTooLarge, len(f.Slots))
	}
	size := tdmHeaderLen + tdmTrailerLen
	for _, s := range f.Slots {
		if s.Sender < 0 || s.Sender > math.MaxUint8 {
			return fmt.Errorf("%w: sender %d", ErrTooLarge, s.Sender)
		}
		if len(s.Data) > math.MaxUint8 {
			return fmt.Errorf("%w: slot of %d bytes", ErrTooLarge, len(s.Data))
		}
		size += tdmSlotHeader + len(s.Data)
	}

	buf, err := b.PrependBytes(size)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(buf[0:2], f.Tick)
	buf[2] = byte(len(f.Slots))
	off := tdmHeaderLen
	for _, s := range f.Slots {
		var flags byte
		if s.Stuffed {
			flags |= slotFlagStuffed
		}
		buf[off], buf[off+1], buf[off+2] = byte(s.Sender), flags, byte(len(s.Data))
		off += tdmSlotHeader
		off += copy(buf[off:], s.Data)
	}
	if opts.ComputeChecksums {
		f.CRC = bits.CRC8(buf[:off])
	}
	buf[off] = f.CRC
	return nil
}

func decodeTDMFrame(data []byte, p gopacket.PacketBuilder) error {
	f := &TDMFrame{}
	if err := f.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(f)
	return nil
}

// EncodeFrame serialises f for the channel, computing its CRC.
func EncodeFrame(f Frame) ([]byte, error) {
	if f.Tick < 0 || f.Tick > math.MaxUint16 {
		return nil, fmt.Errorf("%w: tick %d", ErrTooLarge, f.Tick)
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, &TDMFrame{Tick: uint16(f.Tick), Slots: f.Slots}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeFrame parses and checks a frame produced by EncodeFrame.
func DecodeFrame(data []byte) (Frame, error) {
	packet := gopacket.NewPacket(data, LayerTypeTDMFrame, gopacket.Default)
	if errLayer := packet.ErrorLayer(); errLayer != nil {
		return Frame{}, errLayer.Error()
	}
	layer, ok := packet.Layer(LayerTypeTDMFrame).(*TDMFrame)
	if !ok {
		return Frame{}, fmt.Errorf("%w: no TDM layer", ErrTruncated)
	}
	return Frame{Tick: int(layer.Tick), Slots: layer.Slots}, nil
}
