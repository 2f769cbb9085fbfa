/*
Package session implements wizard session management and persistence orchestration.

It serializes the load → transition → save cycle of each wizard session,
combining per-process reference-counted mutexes with an optional distributed
lock so replicas sharing a store do not lose updates.
*/
package session
