/*
Package server accepts bwtnet connections and answers one batch per connection.

The Server runs an accept loop and hands every accepted connection to its own
goroutine running a Handler. Handlers share nothing mutable: each reads one framed
request, asks its Replier for the reply, writes it framed, and closes the socket.
There is no limit on concurrent connections.

By default a connection that never sends the frame terminator keeps its goroutine
blocked forever; WithReadTimeout bounds the wait.
*/
package server
