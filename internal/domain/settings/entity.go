package settings

// Value is a configuration string that may be absent.
// The zero value is absent.
type Value struct {
	s  string
	ok bool
}

func Some(s string) Value {
	return Value{s: s, ok: true}
}

func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

func (v Value) IsSet() bool {
	return v.ok
}

func (v Value) OrElse(def string) string {
	if !v.ok {
		return def
	}
	return v.s
}

// Ptr returns nil when the value is absent.
func (v Value) Ptr() *string {
	if !v.ok {
		return nil
	}
	s := v.s
	return &s
}

type Settings struct {
	DatabaseURL Value
	Port        Value
}
