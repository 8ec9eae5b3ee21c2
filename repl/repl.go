package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rbarraud/lisper/lisp"
	"github.com/rbarraud/lisper/parser"
)

// RunRepl runs a simple repl.  The environment persists across inputs
// within the session; a failed form leaves the bindings of previously
// successful forms intact.
func RunRepl(prompt string) {
	ip := lisp.New()
	var env *lisp.LEnv

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		vals, _, perr := parser.ParseLVal(line)
		if perr == io.ErrUnexpectedEOF {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		if perr != nil {
			errln(perr)
			continue
		}
		for _, v := range vals {
			r, next := ip.Eval(v, env)
			if r.Type == lisp.LError {
				errln(r.Err)
				break
			}
			env = next
			fmt.Println(r)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
