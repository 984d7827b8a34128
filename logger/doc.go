/*
Package logger provides logging functionality to a trailmap app by defining the required behavior in [Logger]
and providing an implementation of it with [TrailsLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[TrailsLogger] accepts a [LogLevel] and only emits messages at or above that level.
For example, if initialized with [LogLevelWarn],
only [*TrailsLogger.Warn], [*TrailsLogger.Error], and [*TrailsLogger.Fatal] produce messages.

Route loading leans on this:
diagnostics about skipped route modules are written at DEBUG,
or at INFO when loading verbosely,
so the same Logger quiets or surfaces them depending on its level.

# TrailsLogger

Log messages emitted by [TrailsLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [WARN] http/filerouter/collect.go:97 'skipping possibly misspelled route file' log_context: {"file":"api/users/router.lua"}

The log context is a JSON-encoded [LogContext].

# SentryLogger

When the SENTRY_DSN environment variable is set, [NewLogger] returns a [SentryLogger]
which additionally ships any LogContext.Error logged at WARN or above to Sentry.
*/
package logger
