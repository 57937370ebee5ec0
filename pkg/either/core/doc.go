// Package core contains pipeline plumbing utilities: channel helpers, worker
// configuration via context, and the locomotive that drives stages. It does
// not define business logic; instead it provides the scaffolding for the lite
// package and the dispatchers to run pipelines with controlled concurrency.
package core
