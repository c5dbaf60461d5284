// Package charorder decides how a single column of rolling text travels from
// its source character to its target character.
//
// # Overview
//
// When the displayed text changes, every column (character position) rolls
// independently, like the digit wheels of a mechanical odometer. For each
// column a [Strategy] picks the ordered list of characters the column shows
// on its way, the [Transition], together with the [Direction] the wheel
// turns.
//
// Strings of different length are right aligned: the shorter one is padded
// on the left with the [Empty] sentinel, so new leading columns roll in from
// nothing and removed leading columns roll out to nothing.
//
// # Pools
//
// A [Pool] is an ordered alphabet such as "0123456789". Pools always start
// with [Empty]. Pool-aware resolvers ([Normal], [SameDirection]) roll through
// the pool members that lie between source and target; when no registered
// pool contains both characters the column falls back to a direct cut.
//
// # Strategies
//
//   - [Simple] with [Direct] (the default): source then target, no
//     intermediate characters.
//   - [Simple] with [NoAnimation]: jump straight to the target.
//   - [Simple] with [Normal]: linear run through the pool, direction follows
//     pool order.
//   - [Simple] with [SameDirection]: cyclic run that always turns one way.
//   - [CarryBit]: decimal odometer; lower columns spin once per carry.
//
// # Manager
//
// [Manager] holds the registered pools and the active strategy and is the
// only entry point the rendering layer needs:
//
//	m := charorder.NewManager(
//	    charorder.WithPool([]rune("0123456789")),
//	    charorder.WithStrategy(charorder.Simple{Resolver: charorder.Normal}),
//	)
//	t, err := m.ResolveColumn([]rune("19"), []rune("23"), 1)
//	// t.Chars == ['9' '8' '7' '6' '5' '4' '3'], t.Direction == ScrollUp
//
// A Manager is not safe for concurrent registration and resolution;
// register pools first, then resolve from a single goroutine or many readers.
package charorder
