package uuid

import (
	"encoding/binary"
	"encoding/hex"
)

// Fields is the RFC 4122 field breakdown of a UUID, rendered as hex.
type Fields struct {
	TimeLow          string `json:"time_low" yaml:"time_low"`
	TimeMid          string `json:"time_mid" yaml:"time_mid"`
	TimeHiAndVersion string `json:"time_hi_and_version" yaml:"time_hi_and_version"`
	ClockSeq         string `json:"clock_seq" yaml:"clock_seq"`
	Node             string `json:"node" yaml:"node"`
}

// Fields splits u into its five canonical groups.
func (u UUID) Fields() Fields {
	return Fields{
		TimeLow:          hex.EncodeToString(u[0:4]),
		TimeMid:          hex.EncodeToString(u[4:6]),
		TimeHiAndVersion: hex.EncodeToString(u[6:8]),
		ClockSeq:         hex.EncodeToString(u[8:10]),
		Node:             hex.EncodeToString(u[10:16]),
	}
}

// TimeHi returns the 12 bits of byte 6-7 left after removing the version nibble.
func (u UUID) TimeHi() uint16 {
	return binary.BigEndian.Uint16(u[6:8]) & 0x0fff
}

// ClockSeq returns the 14 bits of byte 8-9 left after removing a 2-bit variant.
func (u UUID) ClockSeq() uint16 {
	return binary.BigEndian.Uint16(u[8:10]) & 0x3fff
}

// VariantName returns a short label for a value returned by Variant.
func VariantName(variant int) string {
	switch variant {
	case VariantNCS:
		return "ncs"
	case VariantRFC4122:
		return "rfc4122"
	case VariantMicrosoft:
		return "microsoft"
	case VariantFuture:
		return "future"
	default:
		return "unknown"
	}
}

// Info is the inspection record shared by the CLI and the service surfaces.
type Info struct {
	UUID        UUID   `json:"uuid" yaml:"uuid"`
	Version     int    `json:"version" yaml:"version"`
	Variant     int    `json:"variant" yaml:"variant"`
	VariantName string `json:"variant_name" yaml:"variant_name"`
	Fields      Fields `json:"fields" yaml:"fields"`
}

// Inspect collects version, variant and fields of u.
func Inspect(u UUID) Info {
	v := u.Variant()
	return Info{
		UUID:        u,
		Version:     u.Version(),
		Variant:     v,
		VariantName: VariantName(v),
		Fields:      u.Fields(),
	}
}
