package bulk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dshills/marsprecedents/internal/schema"
)

// member is one key/value pair of an ordered JSON object.
type member struct {
	key   string
	value any
}

// object is a JSON object whose members are written in slice order.
type object []member

func headerObject(h schema.Header) object {
	return object{
		{"index", object{
			{"_index", h.Index.Index},
			{"_id", h.Index.ID},
		}},
	}
}

func recordObject(r schema.Record) object {
	return object{
		{"case_id", r.CaseID},
		{"sector", r.Sector},
		{"development_type", r.DevelopmentType},
		{"water_usage", r.WaterUsage},
		{"energy_consumption", r.EnergyConsumption},
		{"population_impact", r.PopulationImpact},
		{"terraforming_impact", r.TerraformingImpact},
		{"atmospheric_risk", r.AtmosphericRisk},
		{"resource_risk", r.ResourceRisk},
		{"land_use_risk", r.LandUseRisk},
		{"final_verdict", string(r.FinalVerdict)},
		{"summary", r.Summary},
	}
}

// appendJSON writes o with ", " between members and ": " after keys, the
// layout bulk consumers already hold reference copies of.
func (o object) appendJSON(b []byte) ([]byte, error) {
	b = append(b, '{')
	for i, m := range o {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendString(b, m.key)
		b = append(b, ": "...)
		var err error
		if b, err = appendValue(b, m.value); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", m.key, err)
		}
	}
	return append(b, '}'), nil
}

func appendValue(b []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case object:
		return x.appendJSON(b)
	case string:
		return appendString(b, x), nil
	case bool:
		return strconv.AppendBool(b, x), nil
	case int:
		return strconv.AppendInt(b, int64(x), 10), nil
	case float64:
		return appendFloat(b, x), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// appendFloat writes the shortest representation that round-trips, keeping
// a decimal point on integral values (145.0, 1.0) and switching to exponent
// form outside [1e-4, 1e16).
func appendFloat(b []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(b, "NaN"...)
	case math.IsInf(f, 1):
		return append(b, "Infinity"...)
	case math.IsInf(f, -1):
		return append(b, "-Infinity"...)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.AppendFloat(b, f, 'e', -1, 64)
	}
	start := len(b)
	b = strconv.AppendFloat(b, f, 'f', -1, 64)
	if !bytes.ContainsRune(b[start:], '.') {
		b = append(b, ".0"...)
	}
	return b
}

// appendString writes s as a JSON string with everything outside ASCII
// escaped as \uXXXX (surrogate pairs above the BMP).
func appendString(b []byte, s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	quoted := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	for len(quoted) > 0 {
		r, size := utf8.DecodeRune(quoted)
		switch {
		case r < utf8.RuneSelf:
			b = append(b, byte(r))
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			b = fmt.Appendf(b, `\u%04x\u%04x`, r1, r2)
		default:
			b = fmt.Appendf(b, `\u%04x`, r)
		}
		quoted = quoted[size:]
	}
	return b
}
