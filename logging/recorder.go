package logging

import "sync"

// Recorder is a Logger double that captures every message, tagged with its
// severity prefix, in call order. Capture is unconditional: there is no
// level filtering.
//
// A Recorder is safe for concurrent use in case the tested method hands the
// logger to goroutines of its own.
type Recorder struct {
	messages []string
	lock     sync.Mutex
}

func (r *Recorder) Error(msg string) { r.append(TagError(msg)) }
func (r *Recorder) Warn(msg string)  { r.append(TagWarn(msg)) }
func (r *Recorder) Info(msg string)  { r.append(TagInfo(msg)) }

func (r *Recorder) append(tagged string) {
	r.lock.Lock()
	r.messages = append(r.messages, tagged)
	r.lock.Unlock()
}

// Messages returns a copy of the captured sequence.
func (r *Recorder) Messages() []string {
	r.lock.Lock()
	ret := append([]string(nil), r.messages...)
	r.lock.Unlock()
	return ret
}

// Clear resets the captured sequence to empty.
func (r *Recorder) Clear() {
	r.lock.Lock()
	r.messages = nil
	r.lock.Unlock()
}
