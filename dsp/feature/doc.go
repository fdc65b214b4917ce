// Package feature provides a fixed-size circular buffer for frames of
// feature vectors (for example MFCC or filterbank frames of a speech
// signal) together with bounds-checked views over single frames.
//
// A Buffer holds NumFrames vectors of Dim values each in one contiguous
// slice. Frames are addressed by an unbounded logical frame counter that
// wraps onto the physical slots, so a sliding-window process can keep
// writing frame t+NumFrames over frame t without moving data. Negative
// frame numbers wrap as well, which makes look-behind context such as
// buf.Frame(t-2) work at the start of a stream.
//
// Views returned by Frame and MutFrame alias the buffer storage and are
// valid until the next Resize. A Buffer is not safe for concurrent use;
// callers that share one between goroutines must serialize access.
package feature
