/*
Package domain contains the core domain models for the bwtnet conversion service.

It defines the records that travel through one request/response exchange, the
markers that encode their direction and the markers used on the wire. This
package is kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Record: one header+body unit parsed from a batch message.
  - Direction: whether a record awaits the forward (ToBWT) or inverse (ToDNA) transform.
  - TransformedRecord: a successfully converted record with its flipped marker.
  - ErrorTag: the original header of a record that could not be converted.
  - Outcome: the accumulated tags and records of one accepted batch.
*/
package domain
