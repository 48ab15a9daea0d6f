// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"log/slog"

	"github.com/gogpu/photomode/internal/logx"
)

var logger logx.Holder

// SetLogger configures the logger used by this package.
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) { logger.Store(l) }
