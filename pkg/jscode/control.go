package jscode

// Conditional is an if statement with optional else or else-if branch.
type Conditional struct {
	test   Expression
	then   *Block
	els    *Block
	elseIf *Conditional
}

// If inserts an if statement and returns it.
func (b *Block) If(test any) *Conditional {
	c := newConditional(Convert(test))
	b.insert(c)
	return c
}

func newConditional(test Expression) *Conditional {
	return &Conditional{test: test, then: NewBlock()}
}

// Then returns the block executed when the test holds.
func (c *Conditional) Then() *Block { return c.then }

// Else returns the else block, creating it on first use.
// It replaces a previously created else-if branch.
func (c *Conditional) Else() *Block {
	if c.els == nil {
		c.els = NewBlock()
		c.elseIf = nil
	}
	return c.els
}

// ElseIf chains another conditional as the else branch.
func (c *Conditional) ElseIf(test any) *Conditional {
	c.elseIf = newConditional(Convert(test))
	c.els = nil
	return c.elseIf
}

func (c *Conditional) State(f *Formatter) {
	c.generate(f)
	f.NL()
}

func (c *Conditional) generate(f *Formatter) {
	f.Plain("if(")
	generateBare(f, c.test)
	f.Plain(")")
	c.then.Generate(f)
	switch {
	case c.elseIf != nil:
		f.Plain("else ")
		c.elseIf.generate(f)
	case c.els != nil:
		f.Plain("else")
		c.els.Generate(f)
	}
}

// ForLoop is a classic for(init;test;update) loop.
type ForLoop struct {
	inits  []*Var
	test   Expression
	update Expression
	body   *Block
}

// For inserts an empty for loop and returns it.
func (b *Block) For() *ForLoop {
	l := &ForLoop{}
	b.insert(l)
	return l
}

// Init declares a loop variable.
func (l *ForLoop) Init(name string, v any) *Var {
	lv := NewVar(name)
	lv.init = Convert(v)
	l.inits = append(l.inits, lv)
	return lv
}

// Test sets the loop condition.
func (l *ForLoop) Test(e any) *ForLoop {
	l.test = Convert(e)
	return l
}

// Update sets the update expression.
func (l *ForLoop) Update(e any) *ForLoop {
	l.update = Convert(e)
	return l
}

// Body returns the loop body, creating it on first use.
// A loop without body is printed with an empty statement.
func (l *ForLoop) Body() *Block {
	if l.body == nil {
		l.body = NewBlock()
	}
	return l.body
}

// SimpleLoop configures a counting loop from from towards to, exclusive.
// It counts down when from is greater than to.
func (l *ForLoop) SimpleLoop(name string, from, to int64) *ForLoop {
	v := l.Init(name, from)
	if from > to {
		l.Test(v.Gt(to))
		l.Update(v.DecrPostfix())
	} else {
		l.Test(v.Lt(to))
		l.Update(v.IncrPostfix())
	}
	return l
}

func (l *ForLoop) State(f *Formatter) {
	f.Plain("for(")
	for i, v := range l.inits {
		if i == 0 {
			v.declare(f)
			continue
		}
		f.Plain(",").Plain(v.name)
		if v.init != nil {
			f.Plain("=")
			v.init.Generate(f)
		}
	}
	f.Plain(";")
	if l.test != nil {
		l.test.Generate(f)
	}
	f.Plain(";")
	if l.update != nil {
		l.update.Generate(f)
	}
	f.Plain(")")
	generateLoopBody(f, l.body)
}

// ForIn is a for(var x in collection) loop.
type ForIn struct {
	v          *Var
	collection Expression
	body       *Block
}

// ForIn inserts a for-in loop over collection with a new loop variable.
func (b *Block) ForIn(name string, collection any) *ForIn {
	l := &ForIn{v: NewVar(name), collection: Convert(collection)}
	b.insert(l)
	return l
}

// Var returns the loop variable.
func (l *ForIn) Var() *Var { return l.v }

// Body returns the loop body, creating it on first use.
func (l *ForIn) Body() *Block {
	if l.body == nil {
		l.body = NewBlock()
	}
	return l.body
}

func (l *ForIn) State(f *Formatter) {
	f.Plain("for(var ").Plain(l.v.name).Plain(" in ")
	l.collection.Generate(f)
	f.Plain(")")
	generateLoopBody(f, l.body)
}

// WhileLoop is while(test){...}.
type WhileLoop struct {
	test Expression
	body *Block
}

// While inserts a while loop.
func (b *Block) While(test any) *WhileLoop {
	l := &WhileLoop{test: Convert(test)}
	b.insert(l)
	return l
}

// Body returns the loop body, creating it on first use.
func (l *WhileLoop) Body() *Block {
	if l.body == nil {
		l.body = NewBlock()
	}
	return l.body
}

func (l *WhileLoop) State(f *Formatter) {
	f.Plain("while(")
	generateBare(f, l.test)
	f.Plain(")")
	generateLoopBody(f, l.body)
}

// DoLoop is do{...}while(test);.
type DoLoop struct {
	test Expression
	body *Block
}

// Do inserts a do-while loop.
func (b *Block) Do(test any) *DoLoop {
	l := &DoLoop{test: Convert(test), body: NewBlock()}
	b.insert(l)
	return l
}

// Body returns the loop body.
func (l *DoLoop) Body() *Block { return l.body }

func (l *DoLoop) State(f *Formatter) {
	f.Plain("do")
	l.body.Generate(f)
	f.Plain("while(")
	generateBare(f, l.test)
	f.Plain(");").NL()
}

func generateLoopBody(f *Formatter, body *Block) {
	if body == nil {
		f.Plain(";").NL()
		return
	}
	body.Generate(f)
	f.NL()
}

// TryBlock is try{...}catch(e){...}finally{...}.
type TryBlock struct {
	body    *Block
	catch   *CatchBlock
	finally *Block
}

// CatchBlock is the catch clause of a TryBlock.
type CatchBlock struct {
	param *Var
	body  *Block
}

// Param returns the caught exception variable.
func (c *CatchBlock) Param() *Var { return c.param }

// Body returns the catch body.
func (c *CatchBlock) Body() *Block { return c.body }

// Try inserts a try statement.
func (b *Block) Try() *TryBlock {
	t := &TryBlock{body: NewBlock()}
	b.insert(t)
	return t
}

// Body returns the guarded block.
func (t *TryBlock) Body() *Block { return t.body }

// Catch adds the catch clause, or returns the existing one.
func (t *TryBlock) Catch(param string) *CatchBlock {
	if t.catch == nil {
		t.catch = &CatchBlock{param: NewVar(param), body: NewBlock()}
	}
	return t.catch
}

// Finally returns the finally block, creating it on first use.
func (t *TryBlock) Finally() *Block {
	if t.finally == nil {
		t.finally = NewBlock()
	}
	return t.finally
}

func (t *TryBlock) State(f *Formatter) {
	f.Plain("try")
	t.body.Generate(f)
	if t.catch != nil {
		f.Plain("catch (").Plain(t.catch.param.name).Plain(")")
		t.catch.body.Generate(f)
	}
	if t.finally != nil {
		f.Plain("finally")
		t.finally.Generate(f)
	}
	f.NL()
}

// Label names the statement that follows it, for use with labeled break and continue.
type Label struct {
	name string
}

// Label inserts a label.
func (b *Block) Label(name string) *Label {
	l := &Label{name: name}
	b.insert(l)
	return l
}

// Name returns the label name.
func (l *Label) Name() string { return l.name }

func (l *Label) State(f *Formatter) {
	f.Plain(l.name).Plain(":")
}

type jump struct {
	keyword string
	label   *Label
}

func (j *jump) State(f *Formatter) {
	f.Plain(j.keyword)
	if j.label != nil {
		f.Plain(" ").Plain(j.label.name)
	}
	f.Plain(";").NL()
}

// Break inserts break;.
func (b *Block) Break() *Block {
	b.insert(&jump{keyword: "break"})
	return b
}

// BreakLabel inserts break label;.
func (b *Block) BreakLabel(l *Label) *Block {
	b.insert(&jump{keyword: "break", label: l})
	return b
}

// Continue inserts continue;.
func (b *Block) Continue() *Block {
	b.insert(&jump{keyword: "continue"})
	return b
}

// ContinueLabel inserts continue label;.
func (b *Block) ContinueLabel(l *Label) *Block {
	b.insert(&jump{keyword: "continue", label: l})
	return b
}
