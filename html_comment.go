package scanner

// htmlCommentState is one of the ten states of the HTML5 comment
// tokenizer (spec.md §4.3), named after the raw input the scanner has
// matched so far rather than after WHATWG's verbose state names.
type htmlCommentState int

const (
	csStart         htmlCommentState = iota // seen "<!", 0 of the 2 opening dashes
	csStartDash                             // seen "<!-", 1 of the 2 opening dashes
	csBody                                  // inside comment content
	csLT                                    // body content ends in "<"
	csLTBang                                // body content ends in "<!"
	csLTBangDash                            // body content ends in "<!-"
	csLTBangDashDash                        // body content ends in "<!--" (nested-comment lookahead)
	csEndDash                               // body content ends in "-"
	csEnd                                   // body content ends in "--"
	csEndBang                               // body content ends in "--!"
)

// scanHTMLComment runs the comment DFA described in spec.md §4.3. It
// must be called with the cursor positioned immediately after the
// caller has consumed "<!". It accepts on "-->", "--!>", an immediate
// ">" right after "<!" or "<!-", or at end-of-input (lenient EOF,
// matching HTML5's eof-in-comment recovery: the comment is accepted at
// whatever has been scanned so far rather than rejected).
func scanHTMLComment(c Cursor) bool {
	state := csStart
	for {
		ch := c.Lookahead()
		if ch == EOFRune {
			c.MarkEnd()
			return true
		}

		switch state {
		case csStart:
			switch ch {
			case '-':
				c.Advance(false)
				state = csStartDash
			case '>':
				c.Advance(false)
				c.MarkEnd()
				return true
			default:
				state = csBody
			}
		case csStartDash:
			switch ch {
			case '-':
				c.Advance(false)
				state = csEnd
			case '>':
				c.Advance(false)
				c.MarkEnd()
				return true
			default:
				state = csBody
			}
		case csBody:
			switch ch {
			case '<':
				c.Advance(false)
				state = csLT
			case '-':
				c.Advance(false)
				state = csEndDash
			default:
				c.Advance(false)
			}
		case csLT:
			switch ch {
			case '!':
				c.Advance(false)
				state = csLTBang
			case '<':
				c.Advance(false)
			default:
				state = csBody
			}
		case csLTBang:
			switch ch {
			case '-':
				c.Advance(false)
				state = csLTBangDash
			default:
				state = csBody
			}
		case csLTBangDash:
			switch ch {
			case '-':
				c.Advance(false)
				state = csLTBangDashDash
			default:
				state = csEndDash
			}
		case csLTBangDashDash:
			// Whatever follows (including '>'), a nested "<!--"
			// inside the comment body falls through to the end
			// state without consuming it (spec.md §4.3's lenient
			// handling of the HTML5 nested-comment case).
			state = csEnd
		case csEndDash:
			switch ch {
			case '-':
				c.Advance(false)
				state = csEnd
			default:
				state = csBody
			}
		case csEnd:
			switch ch {
			case '>':
				c.Advance(false)
				c.MarkEnd()
				return true
			case '!':
				c.Advance(false)
				state = csEndBang
			case '-':
				c.Advance(false)
			default:
				state = csBody
			}
		case csEndBang:
			switch ch {
			case '-':
				c.Advance(false)
				state = csEndDash
			case '>':
				c.Advance(false)
				c.MarkEnd()
				return true
			default:
				state = csBody
			}
		}
	}
}
