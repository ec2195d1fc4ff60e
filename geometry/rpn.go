package geometry

import "fmt"

// generateRPN converts an infix token sequence to Reverse Polish Notation
// using the shunting-yard algorithm. Union and intersection are
// left-associative, complement is right-associative and binds tightest.
// Mismatched parentheses are reported against the owning cell's id.
func generateRPN(cellID int32, infix []Token) ([]Token, error) {
	rpn := make([]Token, 0, len(infix))
	var stack []Token

	for _, token := range infix {
		switch {
		case token.IsOperand():
			rpn = append(rpn, token)

		case token.IsBinaryOp() || token == opComplement:
			// Emit stacked operators that must evaluate before this one.
			for len(stack) > 0 {
				op := stack[len(stack)-1]
				if op == opLeftParen || !token.popsBefore(op) {
					break
				}
				rpn = append(rpn, op)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, token)

		case token == opLeftParen:
			stack = append(stack, token)

		default:
			// Right parenthesis: emit operators until the matching left
			// parenthesis, then discard it.
			for {
				if len(stack) == 0 {
					return nil, fmt.Errorf(
						"Mismatched parentheses in region specification "+
							"for cell %d.", cellID,
					)
				}
				op := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if op == opLeftParen {
					break
				}
				rpn = append(rpn, op)
			}
		}
	}

	for len(stack) > 0 {
		op := stack[len(stack)-1]
		if op == opLeftParen || op == opRightParen {
			return nil, fmt.Errorf(
				"Mismatched parentheses in region specification for "+
					"cell %d.", cellID,
			)
		}
		rpn = append(rpn, op)
		stack = stack[:len(stack)-1]
	}

	return rpn, nil
}

// checkRPN verifies that evaluating the postfix form with a boolean stack
// leaves exactly one value, or that the form is empty. Anything else means
// the infix expression was missing an operand or an operator.
func checkRPN(cellID int32, rpn []Token) error {
	if len(rpn) == 0 {
		return nil
	}

	depth := 0
	for _, token := range rpn {
		switch {
		case token.IsOperand():
			depth++
		case token.IsBinaryOp():
			if depth < 2 {
				return malformedRegion(cellID)
			}
			depth--
		case token == opComplement:
			if depth < 1 {
				return malformedRegion(cellID)
			}
		}
	}
	if depth != 1 {
		return malformedRegion(cellID)
	}
	return nil
}

func malformedRegion(cellID int32) error {
	return fmt.Errorf(
		"Region specification for cell %d is malformed.", cellID,
	)
}
