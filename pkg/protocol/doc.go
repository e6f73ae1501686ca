/*
Package protocol implements the bwtnet wire format.

A request and its reply are each a UTF-8 payload followed by the two bytes "/0".
The receiver reads until the terminator shows up anywhere in the stream and keeps
what precedes it. A payload that itself contains "/0" cannot be told apart from a
terminated one; this is a property of the format, kept for compatibility.

Replies come in three shapes, told apart by their first bytes (see DecodeReply):
a rejection text, a complete success block, or an error block ("%%%"-separated
headers and a newline) followed by the success block.
*/
package protocol
