package compare

import (
	"go.uber.org/zap"

	"gitlab.com/rogov-ks/numcmp/multiset"
	"gitlab.com/rogov-ks/numcmp/numseq"
)

type Freq = multiset.Multiset[numseq.Number]

// Side is what one input file contributed to a comparison.
type Side struct {
	Path  string
	Count int
	Freq  *Freq
}

type Result struct {
	First  Side
	Second Side
	Equal  bool

	// FirstExcess maps numbers to how many more times they occur in First
	// than in Second. SecondExcess is the reverse.
	FirstExcess  *Freq
	SecondExcess *Freq
}

// LoadFunc returns the text content of path.
type LoadFunc func(path string) (string, error)

type Comparator struct {
	Load   LoadFunc
	Logger *zap.Logger
}

func New(load LoadFunc, logger *zap.Logger) *Comparator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Comparator{Load: load, Logger: logger}
}

// Compare loads both files one after another and compares their numbers.
// The first load error is returned as is and no Result is produced.
func (c *Comparator) Compare(path1, path2 string) (Result, error) {
	text1, err := c.load(path1)
	if err != nil {
		return Result{}, err
	}
	text2, err := c.load(path2)
	if err != nil {
		return Result{}, err
	}

	r := Analyze(path1, text1, path2, text2)
	c.logger().Debug("compared files",
		zap.Bool("equal", r.Equal),
		zap.Int("first_excess", r.FirstExcess.Len()),
		zap.Int("second_excess", r.SecondExcess.Len()),
	)
	return r, nil
}

func (c *Comparator) load(path string) (string, error) {
	text, err := c.Load(path)
	if err != nil {
		c.logger().Debug("load failed", zap.String("path", path), zap.Error(err))
		return "", err
	}
	c.logger().Debug("file loaded", zap.String("path", path), zap.Int("bytes", len(text)))
	return text, nil
}

func (c *Comparator) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Analyze runs extraction, tally and difference on two in-memory texts.
func Analyze(path1, text1, path2, text2 string) Result {
	first := side(path1, text1)
	second := side(path2, text2)

	r := Result{
		First:  first,
		Second: second,
		Equal:  multiset.Equal(first.Freq, second.Freq),
	}
	if r.Equal {
		r.FirstExcess = multiset.New[numseq.Number]()
		r.SecondExcess = multiset.New[numseq.Number]()
	} else {
		r.FirstExcess = multiset.Subtract(first.Freq, second.Freq)
		r.SecondExcess = multiset.Subtract(second.Freq, first.Freq)
	}
	return r
}

func side(path, text string) Side {
	seq := numseq.Extract(text)
	return Side{
		Path:  path,
		Count: len(seq),
		Freq:  multiset.Of(seq...),
	}
}
