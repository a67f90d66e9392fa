// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gpucontext"

// DeviceHandle is the host GPU context a job's surface is created
// against. Only its SurfaceFormat is consulted: frames are read back in
// that layout when it is RGBA8 or BGRA8. A nil handle renders RGBA8.
type DeviceHandle = gpucontext.DeviceProvider
