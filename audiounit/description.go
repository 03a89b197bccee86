package audiounit

import "fmt"

// FourCC is a four-character component code such as 'aufx'.
type FourCC uint32

// NewFourCC packs a four-byte ASCII code. Shorter codes are space padded and
// longer codes truncated.
func NewFourCC(code string) FourCC {
	b := [4]byte{' ', ' ', ' ', ' '}
	copy(b[:], code)

	return FourCC(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// String returns the four-character representation.
func (c FourCC) String() string {
	return string([]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)})
}

// Component codes for the units this module knows about.
var (
	TypeEffect = NewFourCC("aufx")

	SubTypeBandPassFilter = NewFourCC("bpas")
	SubTypeLowPassFilter  = NewFourCC("lpas")
	SubTypeHighPassFilter = NewFourCC("hpas")

	ManufacturerApple = NewFourCC("appl")
)

// Description identifies a component to instantiate.
type Description struct {
	Type         FourCC
	SubType      FourCC
	Manufacturer FourCC
	Flags        uint32
	FlagsMask    uint32
}

// EffectDescription returns the description of an effect-type component.
func EffectDescription(subType, manufacturer FourCC) Description {
	return Description{
		Type:         TypeEffect,
		SubType:      subType,
		Manufacturer: manufacturer,
	}
}

// BandPassFilterDescription identifies the band-pass effect unit.
var BandPassFilterDescription = EffectDescription(SubTypeBandPassFilter, ManufacturerApple)

// LowPassFilterDescription identifies the low-pass effect unit.
var LowPassFilterDescription = EffectDescription(SubTypeLowPassFilter, ManufacturerApple)

// HighPassFilterDescription identifies the high-pass effect unit.
var HighPassFilterDescription = EffectDescription(SubTypeHighPassFilter, ManufacturerApple)

func (d Description) String() string {
	return fmt.Sprintf("%s/%s/%s", d.Type, d.SubType, d.Manufacturer)
}
