package dis_test

import (
	"os"

	"github.com/cloudcmds/loxcore/bytecode"
	"github.com/cloudcmds/loxcore/dis"
	"github.com/cloudcmds/loxcore/object"
	"github.com/cloudcmds/loxcore/op"
	"github.com/cloudcmds/loxcore/value"
)

func ExampleDisassembler_Chunk() {
	arena := object.NewArena()
	chunk := bytecode.NewChunk()
	greeting := value.String(arena.Intern("greeting"))

	_ = chunk.EmitConstant(value.String(arena.Intern("hello")), 1)
	_ = chunk.EmitIndexed(op.DefineGlobal, greeting, 1)
	_ = chunk.EmitIndexed(op.GetGlobal, greeting, 2)
	chunk.WriteOp(op.Print, 2)
	chunk.WriteOp(op.Return, 3)

	dis.New(dis.WithWriter(os.Stdout)).Chunk(chunk, "script", arena)
	// Output:
	// == script ==
	// 0000    1 OP_CONSTANT         0 'hello'
	// 0002    | OP_DEFINE_GLOBAL    1 'greeting'
	// 0004    2 OP_GET_GLOBAL       2 'greeting'
	// 0006    | OP_PRINT
	// 0007    3 OP_RETURN
}
