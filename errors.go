package chachagen

import (
	"fmt"

	"github.com/xaionaro-go/errors"
)

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	wrappedErr := errors.Wrap(err)
	wrappedErr.(*errors.Error).Traceback.CutOffFirstNLines++
	return wrappedErr
}

// ErrInvalidSeedLength is an error indicates the seed is not exactly
// SeedHexSize hex characters (key followed by nonce).
type ErrInvalidSeedLength struct {
	ExpectedLength uint
	RealLength     uint
}

func newErrInvalidSeedLength(expectedLength, realLength uint) error {
	err := errors.New(ErrInvalidSeedLength{expectedLength, realLength})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrInvalidSeedLength) Error() string {
	return fmt.Sprintf("invalid seed length: %d != %d",
		err.RealLength, err.ExpectedLength)
}

// ErrInvalidSeedEncoding is an error indicates the seed contains
// something that is not a hex digit.
type ErrInvalidSeedEncoding struct {
	OriginalError error
}

func newErrInvalidSeedEncoding(origErr error) error {
	err := errors.New(ErrInvalidSeedEncoding{origErr})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrInvalidSeedEncoding) Error() string {
	return fmt.Sprintf("the seed is not a hex string: %v", err.OriginalError)
}

func (err ErrInvalidSeedEncoding) Unwrap() error {
	return err.OriginalError
}

// ErrUnsupportedRounds is an error indicates the requested number of
// ChaCha rounds is not supported by the selected keystream source.
type ErrUnsupportedRounds struct {
	Rounds uint
}

func newErrUnsupportedRounds(rounds uint) error {
	err := errors.New(ErrUnsupportedRounds{rounds})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrUnsupportedRounds) Error() string {
	return fmt.Sprintf("unsupported number of rounds: %d", err.Rounds)
}

// ErrCannotInitKeystream is an error indicates the underlying cipher
// refused the key/nonce pair.
type ErrCannotInitKeystream struct {
	OriginalError error
}

func newErrCannotInitKeystream(origErr error) error {
	err := errors.New(ErrCannotInitKeystream{origErr})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrCannotInitKeystream) Error() string {
	return fmt.Sprintf("cannot initialize the keystream source: %v", err.OriginalError)
}

func (err ErrCannotInitKeystream) Unwrap() error {
	return err.OriginalError
}

// ErrCounterOutOfRange is an error indicates that a keystream source
// cannot be positioned at the requested block (for example the IETF
// variant has only a 32-bit block counter).
type ErrCounterOutOfRange struct {
	Counter    uint64
	MaxCounter uint64
}

func newErrCounterOutOfRange(counter, maxCounter uint64) error {
	err := errors.New(ErrCounterOutOfRange{counter, maxCounter})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrCounterOutOfRange) Error() string {
	return fmt.Sprintf("block counter is out of range: %d > %d", err.Counter, err.MaxCounter)
}

// ErrInvalidSteps is an error indicates a partial shuffle was requested
// with a number of steps outside of [1, len-1].
type ErrInvalidSteps struct {
	Steps  int
	Length int
}

func newErrInvalidSteps(steps, length int) error {
	err := errors.New(ErrInvalidSteps{steps, length})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrInvalidSteps) Error() string {
	return fmt.Sprintf("invalid steps value %d: should be within [1, %d]", err.Steps, err.Length-1)
}

// ErrInvalidSampleSize is an error indicates a sample size outside of
// [1, len].
type ErrInvalidSampleSize struct {
	SampleSize int
	Length     int
}

func newErrInvalidSampleSize(sampleSize, length int) error {
	err := errors.New(ErrInvalidSampleSize{sampleSize, length})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrInvalidSampleSize) Error() string {
	return fmt.Sprintf("invalid sample size %d: should be within [1, %d]", err.SampleSize, err.Length)
}

// ErrInvalidChoicesCount is an error indicates a choices count outside
// of [1, len-1].
type ErrInvalidChoicesCount struct {
	Count  int
	Length int
}

func newErrInvalidChoicesCount(count, length int) error {
	err := errors.New(ErrInvalidChoicesCount{count, length})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrInvalidChoicesCount) Error() string {
	return fmt.Sprintf("invalid choices count %d: should be within [1, %d]", err.Count, err.Length-1)
}

// ErrEmptySequence is an error indicates there is nothing to choose from.
type ErrEmptySequence struct{}

func newErrEmptySequence() error {
	err := errors.New(ErrEmptySequence{})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrEmptySequence) Error() string {
	return "empty sequence"
}

// ErrInvalidWeights is an error indicates the weights cannot be used
// for a weighted choice: the lengths differ, the sum is zero or the sum
// does not fit into uint64.
type ErrInvalidWeights struct {
	Reason string
}

func newErrInvalidWeights(reason string) error {
	err := errors.New(ErrInvalidWeights{reason})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrInvalidWeights) Error() string {
	return fmt.Sprintf("invalid weights: %s", err.Reason)
}

// ErrInvalidSnapshot is an error indicates a Snapshot cannot describe
// a reachable generator state.
type ErrInvalidSnapshot struct {
	Reason string
}

func newErrInvalidSnapshot(reason string) error {
	err := errors.New(ErrInvalidSnapshot{reason})
	err.Traceback.CutOffFirstNLines += 2
	return err
}

func (err ErrInvalidSnapshot) Error() string {
	return fmt.Sprintf("invalid snapshot: %s", err.Reason)
}
