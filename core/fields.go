package core

// Fields is an ordered collection of Fields with unique keys. Setting
// a key that is already present replaces its value in place, keeping
// the position of the first insertion; new keys append. Iteration
// order (Items) is therefore first-insertion order, and formatters
// depend on it being stable.
//
// The backing store is a plain slice with linear-scan lookup. Log
// calls carry a handful of fields, where the scan beats a map and a
// reused Fields never allocates.
//
// A Fields value belongs to one goroutine at a time.
type Fields struct {
	kv []Field
}

// Set inserts f, replacing the value of an existing key
func (fs *Fields) Set(f Field) {
	for i := range fs.kv {
		if fs.kv[i].Key == f.Key {
			fs.kv[i] = f
			return
		}
	}
	fs.kv = append(fs.kv, f)
}

// SetString sets key to a text value
func (fs *Fields) SetString(key, value string) {
	fs.Set(Field{Key: key, Type: StringType, Str: value})
}

// SetInt64 sets key to a signed integer value
func (fs *Fields) SetInt64(key string, value int64) {
	fs.Set(Field{Key: key, Type: Int64Type, Int64: value})
}

// SetFloat64 sets key to a floating-point value
func (fs *Fields) SetFloat64(key string, value float64) {
	fs.Set(Field{Key: key, Type: Float64Type, Float64: value})
}

// SetBool sets key to a boolean value
func (fs *Fields) SetBool(key string, value bool) {
	var v int64
	if value {
		v = 1
	}
	fs.Set(Field{Key: key, Type: BoolType, Int64: v})
}

// Len returns the number of distinct keys
func (fs *Fields) Len() int {
	return len(fs.kv)
}

// Contains reports whether key is present
func (fs *Fields) Contains(key string) bool {
	for i := range fs.kv {
		if fs.kv[i].Key == key {
			return true
		}
	}
	return false
}

// Get returns the field stored under key
func (fs *Fields) Get(key string) (Field, bool) {
	for i := range fs.kv {
		if fs.kv[i].Key == key {
			return fs.kv[i], true
		}
	}
	return Field{}, false
}

// Items returns the fields in iteration order. The slice aliases the
// internal store; callers must not hold it across a Reset.
func (fs *Fields) Items() []Field {
	return fs.kv
}

// Reset empties the collection, keeping the allocated capacity
func (fs *Fields) Reset() {
	fs.kv = fs.kv[:0]
}
