// Package encode streams raw RGBA frames into an external video encoder.
//
// A Session owns one encoder process. Frames go through a bounded queue to
// a feeder goroutine that writes them to the process's stdin, so a slow
// encoder pushes back on the producer instead of letting frames pile up in
// memory. The session's completion is observable through Done and Wait
// from the moment Start returns.
//
//	s, err := encode.Config{Width: 500, Height: 500}.Start(ctx, "out.mp4")
//	for _, f := range frames {
//	    if err := s.WriteFrame(ctx, f); err != nil {
//	        break
//	    }
//	}
//	s.Close()
//	err = s.Wait(ctx)
package encode
