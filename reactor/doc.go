// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides the three dispatch strategies that answer writer
// slot changes on an api.Signal:
//
//   - SpinDispatcher: wait then echo, inline, every Step.
//   - Task: a cooperative task split at a fixed suspension point, resumed by
//     an external driver, in either react-then-suspend or suspend-then-react
//     order.
//   - EventLoop: waits and invokes a replaceable api.Handler; Worker is the
//     canonical handler that echoes into the reactor slot.
//
// All three are single-goroutine objects without internal locking. They run
// until the process is terminated; Drive is the unbounded driver loop.
package reactor
