// Package history records completed sync runs so operators can see what
// changed, when, and how much. Persistence is optional: the dispatcher
// treats a nil store as "history disabled".
package history
