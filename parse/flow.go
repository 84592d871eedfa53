package parse

// If runs cond and then one of the branches according to its result.
func If[A any](cond Parser[bool], then, els Parser[A]) Parser[A] {
	return Bind(cond, func(b bool) Parser[A] {
		if b {
			return then
		}
		return els
	})
}

// When runs then only if cond yields true.
func When(cond Parser[bool], then Parser[Unit]) Parser[Unit] {
	return If(cond, then, Pure(Unit{}))
}

// While repeatedly runs p, continuing while it yields true and stopping on
// false. Any failure of p fails the loop.
func While(p Parser[bool]) Parser[Unit] {
	return Parser[Unit]{run: func(st *state) result[Unit] {
		consumed := false
		for {
			res := p.run(st)
			if !res.ok {
				return failWith[Unit](res.err, consumed || res.consumed)
			}
			consumed = consumed || res.consumed
			if !res.value {
				return result[Unit]{ok: true, consumed: consumed}
			}
		}
	}}
}

// ForLoop allocates a fresh register initialized from init and loops: run
// cond to obtain the predicate, stop when it rejects the register's value,
// otherwise run the body and then update the register through the function
// produced by step. The register is handed to body as a read parser and is
// deallocated when the loop exits.
func ForLoop[A any](init Parser[A], cond Parser[func(A) bool], step Parser[func(A) A], body func(Parser[A]) Parser[Unit]) Parser[Unit] {
	return Fill(init, func(r *Register[A]) Parser[Unit] {
		b := body(r.Get())
		return Parser[Unit]{run: func(st *state) result[Unit] {
			consumed := false
			for {
				pc := cond.run(st)
				if !pc.ok {
					return failWith[Unit](pc.err, consumed || pc.consumed)
				}
				consumed = consumed || pc.consumed
				v, fail := r.read(st)
				if fail != nil {
					return failWith[Unit](fail, consumed)
				}
				if !pc.value(v) {
					return result[Unit]{ok: true, consumed: consumed}
				}
				rb := b.run(st)
				if !rb.ok {
					return failWith[Unit](rb.err, consumed || rb.consumed)
				}
				consumed = consumed || rb.consumed
				ps := step.run(st)
				if !ps.ok {
					return failWith[Unit](ps.err, consumed || ps.consumed)
				}
				consumed = consumed || ps.consumed
				v, fail = r.read(st)
				if fail != nil {
					return failWith[Unit](fail, consumed)
				}
				if fail := r.write(st, ps.value(v)); fail != nil {
					return failWith[Unit](fail, consumed)
				}
			}
		}}
	})
}

// ForYield is ForLoop collecting every body result into a list.
func ForYield[A, B any](init Parser[A], cond Parser[func(A) bool], step Parser[func(A) A], body func(Parser[A]) Parser[B]) Parser[[]B] {
	return Fill(init, func(r *Register[A]) Parser[[]B] {
		b := body(r.Get())
		return Parser[[]B]{run: func(st *state) result[[]B] {
			var acc []B
			consumed := false
			for {
				pc := cond.run(st)
				if !pc.ok {
					return failWith[[]B](pc.err, consumed || pc.consumed)
				}
				consumed = consumed || pc.consumed
				v, fail := r.read(st)
				if fail != nil {
					return failWith[[]B](fail, consumed)
				}
				if !pc.value(v) {
					return result[[]B]{ok: true, value: acc, consumed: consumed}
				}
				rb := b.run(st)
				if !rb.ok {
					return failWith[[]B](rb.err, consumed || rb.consumed)
				}
				consumed = consumed || rb.consumed
				acc = append(acc, rb.value)
				ps := step.run(st)
				if !ps.ok {
					return failWith[[]B](ps.err, consumed || ps.consumed)
				}
				consumed = consumed || ps.consumed
				v, fail = r.read(st)
				if fail != nil {
					return failWith[[]B](fail, consumed)
				}
				if fail := r.write(st, ps.value(v)); fail != nil {
					return failWith[[]B](fail, consumed)
				}
			}
		}}
	})
}
