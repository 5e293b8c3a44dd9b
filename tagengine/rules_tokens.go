package tagengine

import "github.com/commanderforge/commanderforge/corpus"

func applyTokensFamily(table *corpus.Table) {
	ApplyTags(table,
		TextMask(Rx(`create[s]? (a|an|\d+|x).{0,30}creature tokens?`)),
		"Token Creation")

	ApplyTags(table,
		TextMask(Rx(`creature tokens? you control (get|have)`), Rx(`tokens? you control.{0,20}\+\d`)),
		"Token Creation", "Token Modifiers")

	ApplyTags(table,
		TextMask(Rx(`if .{0,20}would create (one or more |a )?tokens?.{0,30}instead`), Rx(`create (twice|double) that many`)),
		"Token Creation", "Token Doublers")

	ApplyTags(table,
		TextMask(Rx(`whenever (a|one or more) tokens? (enters|enter)`)),
		"Tokens Matter")
}
