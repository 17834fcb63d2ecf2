// Package move provides sequence operations whose test function consumes its
// argument. Filter and Find hand the test a duplicate of each element (via
// the funcy.Cloner capability) so the original can still be yielded or
// returned; the remaining operations pass elements through directly, since
// no element has to survive the call.
//
// Operations:
// - Filter: lazily yield elements whose duplicate satisfies the test
// - Find: first original element whose duplicate satisfies the test
// - Any/All: existential and universal tests, short-circuiting
// - Position: zero-based index of the first match
// - RPosition: forward index of the last match, scanning from the back
//
// All operations advance the source one element at a time and stop as soon
// as their result is determined. An empty source yields the operation's
// identity: Filter produces nothing, Find/Position/RPosition report no
// match, Any is false, All is true.
package move
