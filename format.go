// FILE: format.go
package rapidlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

const hexChars = "0123456789abcdef"

// serializer converts records to newline-delimited JSON wire lines.
// It is owned by the writer goroutine and reuses one append buffer
// across batches.
type serializer struct {
	buf []byte
}

// newSerializer creates a serializer instance.
func newSerializer() *serializer {
	return &serializer{
		buf: make([]byte, 0, 4096),
	}
}

// reset clears the serializer buffer for reuse.
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// appendRecord encodes one record as a JSON object plus trailing newline.
// If any field value cannot be encoded, the partial line is rolled back
// and a fallback line carrying the error and a textual dump of the field
// set is appended instead. A panic inside a value's MarshalJSON or String
// method is contained the same way. The batch never fails as a whole.
func (s *serializer) appendRecord(rec Record) (fallback bool) {
	mark := len(s.buf)

	err := s.tryAppendRecord(rec)
	if err == nil {
		return false
	}

	s.buf = s.buf[:mark]
	s.appendFallback(rec, err)
	return true
}

// tryAppendRecord writes the regular wire line, returning an error on the
// first unencodable field value.
func (s *serializer) tryAppendRecord(rec Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	s.appendHeader(rec)
	for _, f := range rec.Fields {
		s.buf = append(s.buf, ',')
		s.appendKey(f.Key)
		if err := s.appendValue(f.Value); err != nil {
			return err
		}
	}
	s.buf = append(s.buf, '}', '\n')
	return nil
}

// appendFallback writes the substitute line for a record whose field set
// could not be encoded. Timestamp, level, message and emitter identity are
// preserved; the fields are dumped as an escaped string via spew.
func (s *serializer) appendFallback(rec Record, cause error) {
	s.appendHeader(rec)

	s.buf = append(s.buf, ',')
	s.appendKey(fallbackErrorKey)
	s.buf = append(s.buf, '"')
	s.appendEscaped(fmt.Sprintf("%T: %v", cause, cause))
	s.buf = append(s.buf, '"')

	s.buf = append(s.buf, ',')
	s.appendKey(fallbackFieldsKey)
	s.buf = append(s.buf, '"')
	s.appendEscaped(dumpFields(rec.Fields))
	s.buf = append(s.buf, '"')

	s.buf = append(s.buf, '}', '\n')
}

// appendHeader writes the fixed prefix shared by regular and fallback lines:
// {"ts_ns":...,"level":"...","msg":"...","thread":...
func (s *serializer) appendHeader(rec Record) {
	s.buf = append(s.buf, `{"ts_ns":`...)
	s.buf = strconv.AppendInt(s.buf, rec.TimeNS, 10)
	s.buf = append(s.buf, `,"level":"`...)
	s.buf = append(s.buf, levelToString(rec.Level)...)
	s.buf = append(s.buf, `","msg":"`...)
	s.appendEscaped(rec.Message)
	s.buf = append(s.buf, `","thread":`...)
	s.buf = strconv.AppendInt(s.buf, rec.EmitterID, 10)
}

// appendKey writes a quoted, escaped object key followed by a colon.
func (s *serializer) appendKey(key string) {
	s.buf = append(s.buf, '"')
	s.appendEscaped(key)
	s.buf = append(s.buf, '"', ':')
}

// appendValue encodes a single field value. Common scalar types are
// appended directly; everything else goes through encoding/json, whose
// error (unsupported type, cycle) becomes the serialization fault.
func (s *serializer) appendValue(v any) error {
	switch val := v.(type) {
	case nil:
		s.buf = append(s.buf, "null"...)
	case string:
		s.buf = append(s.buf, '"')
		s.appendEscaped(val)
		s.buf = append(s.buf, '"')
	case bool:
		s.buf = strconv.AppendBool(s.buf, val)
	case int:
		s.buf = strconv.AppendInt(s.buf, int64(val), 10)
	case int8:
		s.buf = strconv.AppendInt(s.buf, int64(val), 10)
	case int16:
		s.buf = strconv.AppendInt(s.buf, int64(val), 10)
	case int32:
		s.buf = strconv.AppendInt(s.buf, int64(val), 10)
	case int64:
		s.buf = strconv.AppendInt(s.buf, val, 10)
	case uint:
		s.buf = strconv.AppendUint(s.buf, uint64(val), 10)
	case uint8:
		s.buf = strconv.AppendUint(s.buf, uint64(val), 10)
	case uint16:
		s.buf = strconv.AppendUint(s.buf, uint64(val), 10)
	case uint32:
		s.buf = strconv.AppendUint(s.buf, uint64(val), 10)
	case uint64:
		s.buf = strconv.AppendUint(s.buf, val, 10)
	case float32:
		return s.appendFloat(float64(val), 32)
	case float64:
		return s.appendFloat(val, 64)
	case time.Time:
		s.buf = append(s.buf, '"')
		s.buf = val.AppendFormat(s.buf, time.RFC3339Nano)
		s.buf = append(s.buf, '"')
	case error:
		s.buf = append(s.buf, '"')
		s.appendEscaped(val.Error())
		s.buf = append(s.buf, '"')
	case fmt.Stringer:
		s.buf = append(s.buf, '"')
		s.appendEscaped(val.String())
		s.buf = append(s.buf, '"')
	case json.RawMessage:
		if !json.Valid(val) {
			return fmtErrorf("invalid raw JSON field value")
		}
		s.buf = append(s.buf, val...)
	case []Field:
		s.buf = append(s.buf, '{')
		for i, f := range val {
			if i > 0 {
				s.buf = append(s.buf, ',')
			}
			s.appendKey(f.Key)
			if err := s.appendValue(f.Value); err != nil {
				return err
			}
		}
		s.buf = append(s.buf, '}')
	case []any:
		s.buf = append(s.buf, '[')
		for i, item := range val {
			if i > 0 {
				s.buf = append(s.buf, ',')
			}
			if err := s.appendValue(item); err != nil {
				return err
			}
		}
		s.buf = append(s.buf, ']')
	case map[string]any:
		// encoding/json sorts keys and handles nesting and cycles
		return s.appendMarshaled(val)
	default:
		return s.appendMarshaled(val)
	}
	return nil
}

// appendFloat rejects values JSON cannot represent.
func (s *serializer) appendFloat(f float64, bits int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmtErrorf("unsupported float value: %v", f)
	}
	s.buf = strconv.AppendFloat(s.buf, f, 'f', -1, bits)
	return nil
}

// appendMarshaled delegates to encoding/json for compound or unknown types.
func (s *serializer) appendMarshaled(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.buf = append(s.buf, data...)
	return nil
}

// appendEscaped appends a string, escaping JSON special characters.
func (s *serializer) appendEscaped(str string) {
	lenStr := len(str)
	for i := 0; i < lenStr; {
		if c := str[i]; c < ' ' || c == '"' || c == '\\' {
			switch c {
			case '\\', '"':
				s.buf = append(s.buf, '\\', c)
			case '\n':
				s.buf = append(s.buf, '\\', 'n')
			case '\r':
				s.buf = append(s.buf, '\\', 'r')
			case '\t':
				s.buf = append(s.buf, '\\', 't')
			case '\b':
				s.buf = append(s.buf, '\\', 'b')
			case '\f':
				s.buf = append(s.buf, '\\', 'f')
			default:
				s.buf = append(s.buf, `\u00`...)
				s.buf = append(s.buf, hexChars[c>>4], hexChars[c&0xF])
			}
			i++
		} else {
			start := i
			for i < lenStr && str[i] >= ' ' && str[i] != '"' && str[i] != '\\' {
				i++
			}
			s.buf = append(s.buf, str[start:i]...)
		}
	}
}

// dumpFields renders the field set as text for the fallback line.
func dumpFields(fields []Field) string {
	dumper := &spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                10,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Key)
		b.WriteString(": ")
		var vb bytes.Buffer
		dumper.Fdump(&vb, f.Value)
		b.Write(bytes.TrimSpace(vb.Bytes()))
	}
	b.WriteByte('}')
	return b.String()
}

// levelToString converts a level rank to its wire name.
func levelToString(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}
