package bigo

// Class is an asymptotic complexity class.
type Class int

const (
	O1 Class = iota
	OLogN
	OSqrtN
	ON
	ONLogN
	ONSquared
	OTwoPowN
	OFactorial
	ONPowN
)

var classLabels = [...]string{
	O1:         "O(1)",
	OLogN:      "O(log(n))",
	OSqrtN:     "O(sqrt(n))",
	ON:         "O(n)",
	ONLogN:     "O(n log(n))",
	ONSquared:  "O(n^2)",
	OTwoPowN:   "O(2^n)",
	OFactorial: "O(n!)",
	ONPowN:     "O(n^n)",
}

// Classes returns every class from the slowest growing to the fastest.
func Classes() []Class {
	classes := make([]Class, len(classLabels))
	for i := range classes {
		classes[i] = Class(i)
	}
	return classes
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classLabels) {
		return "ERROR!"
	}
	return classLabels[c]
}
