package doptions

// Validator checks option and command names against a Policy. A Validator is
// immutable, so it can be shared.
type Validator struct {
	policy   Policy
	reserved map[string]bool
}

// NewValidator returns a Validator enforcing a copy of p. It returns an
// error if the policy is inconsistent.
func NewValidator(p Policy) (*Validator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	v := &Validator{policy: p.copy()}
	if len(p.ReservedNames) > 0 {
		v.reserved = make(map[string]bool, len(p.ReservedNames))
		for _, n := range p.ReservedNames {
			v.reserved[n] = true
		}
	}
	return v, nil
}

// Policy returns a copy of the policy enforced by v.
func (v *Validator) Policy() Policy {
	return v.policy.copy()
}

// ValidateName verifies the characters of a bare name (without leading
// dashes).
func (v *Validator) ValidateName(name string) error {
	if len(name) == 0 {
		return &EmptyNameError{Label: "name"}
	}
	if !isLetter(name[0]) {
		return &InvalidNameError{Name: name, Reason: "must start with a letter"}
	}
	for i := 1; i < len(name); i++ {
		if !v.valid(name[i]) {
			return &InvalidNameError{Name: name, Reason: "invalid character '" + string(name[i]) + "'"}
		}
	}
	if v.reserved[name] {
		return &InvalidNameError{Name: name, Reason: "reserved"}
	}
	return nil
}

// ValidateSize verifies the length of a bare name, as a short name if short
// is true, else as a long name.
func (v *Validator) ValidateSize(name string, short bool) error {
	size := len(name)
	if short {
		if size == 0 || size > v.policy.ShortNameMaxLength {
			return &InvalidSizeError{Name: name, Size: size, Min: 1, Max: v.policy.ShortNameMaxLength, Short: true}
		}
		return nil
	}
	if size == 0 || size <= v.policy.ShortNameMaxLength || size > v.policy.LongNameMaxLength {
		return &InvalidSizeError{Name: name, Size: size, Min: v.policy.ShortNameMaxLength + 1, Max: v.policy.LongNameMaxLength}
	}
	return nil
}

// valid returns true iff c is allowed after the first character of a name.
func (v *Validator) valid(c byte) bool {
	switch {
	case isLetter(c), c >= '0' && c <= '9':
		return true
	case c == '-':
		return v.policy.AllowDashes
	case c == '_':
		return v.policy.AllowUnderscores
	case c == '.':
		return v.policy.AllowDots
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
