// SPDX-License-Identifier: GPL-2.0-or-later

package media

// Codec turns compressed access units into raw frames. Input and
// output are decoupled: QueueInput may block briefly when the decoder
// is saturated, DequeueOutput never blocks.
type Codec interface {
	// QueueInput submits one Annex-B access unit in decode order. A
	// negative timestamp marks data that produces no frame, such as
	// parameter sets.
	QueueInput(data []byte, ptsUs int64) error
	// DequeueOutput returns the next decoded frame when one is ready.
	DequeueOutput() (Frame, bool, error)
	// Flush drops all queued input and any undelivered output. The
	// caller must resubmit codec initialization data afterwards.
	Flush() error
	Close() error
}
