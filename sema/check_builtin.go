package sema

import (
	"github.com/tpl-lang/tpl/ast"
	"github.com/tpl-lang/tpl/types"
)

// CheckBuiltinCall type-checks a call whose callee name did not
// resolve to a user-declared function. On success the call's type is
// stamped; on failure exactly one diagnostic is reported and the
// call's type stays nil. Re-checking an already-stamped call is a
// no-op.
//
// An identity that reaches the dispatcher's default case is a defect
// in the checker itself, not a user error, and panics.
func (x *Checker) CheckBuiltinCall(call *ast.CallExpr) {
	if call.Type() != nil {
		return
	}
	defer x.tr("CheckBuiltinCall(%s)", call.Callee())()

	builtin, ok := LookupBuiltin(call.Callee())
	if !ok {
		x.errs.Report(call.Fun.Pos(), UnknownBuiltin,
			"unknown builtin function %s", call.Callee())
		return
	}

	// The ptrCast target argument is a type written in expression
	// position; it cannot be resolved as an ordinary expression.
	if builtin == PtrCast {
		x.checkPtrCast(call)
		return
	}

	// Resolve all arguments. If any fails, it has already reported
	// its own diagnostic; the call cannot be validated further.
	for _, arg := range call.Args {
		if x.Resolve(arg) == nil {
			return
		}
	}

	switch builtin {
	case BoolToSQL, IntToSQL, FloatToSQL, SQLToBool:
		x.checkSQLConversion(call, builtin)
	case FilterEq, FilterGe, FilterGt, FilterLe, FilterLt, FilterNe:
		x.checkFilter(call)
	case ExecCtxGetMem:
		x.checkExecutionContext(call)
	case ThreadStateContainerInit, ThreadStateContainerReset,
		ThreadStateContainerIterate, ThreadStateContainerFree:
		x.checkThreadStateContainer(call, builtin)
	case TableIterInit, TableIterAdvance, TableIterGetPCI, TableIterClose:
		x.checkTableIter(call, builtin)
	case TableIterParallel:
		x.checkTableIterParallel(call)
	case PCIIsFiltered, PCIHasNext, PCIHasNextFiltered,
		PCIAdvance, PCIAdvanceFiltered, PCIMatch,
		PCIReset, PCIResetFiltered,
		PCIGetSmallInt, PCIGetInt, PCIGetBigInt,
		PCIGetReal, PCIGetDouble:
		x.checkPCI(call, builtin)
	case Hash:
		x.checkHash(call)
	case FilterManagerInit, FilterManagerInsertFilter,
		FilterManagerFinalize, FilterManagerRunFilters,
		FilterManagerFree:
		x.checkFilterManager(call, builtin)
	case AggHashTableInit, AggHashTableInsert, AggHashTableLookup,
		AggHashTableProcessBatch, AggHashTableMovePartitions,
		AggHashTableParallelPartitionedScan, AggHashTableFree:
		x.checkAggHashTable(call, builtin)
	case AggHashTableIterInit, AggHashTableIterHasNext,
		AggHashTableIterNext, AggHashTableIterGetRow,
		AggHashTableIterClose:
		x.checkAggHashTableIter(call, builtin)
	case AggPartIterHasNext, AggPartIterNext,
		AggPartIterGetRow, AggPartIterGetHash:
		x.checkAggPartIter(call, builtin)
	case AggInit, AggAdvance, AggMerge, AggReset, AggResult:
		x.checkAggregator(call, builtin)
	case JoinHashTableInit:
		x.checkJoinHashTableInit(call)
	case JoinHashTableInsert:
		x.checkJoinHashTableInsert(call)
	case JoinHashTableBuild, JoinHashTableBuildParallel:
		x.checkJoinHashTableBuild(call, builtin)
	case JoinHashTableFree:
		x.checkJoinHashTableFree(call)
	case JoinHashTableIterInit:
		x.checkJoinHashTableIterInit(call)
	case JoinHashTableIterHasNext:
		x.checkJoinHashTableIterHasNext(call)
	case JoinHashTableIterGetRow:
		x.checkJoinHashTableIterGetRow(call)
	case JoinHashTableIterClose:
		x.checkJoinHashTableIterClose(call)
	case SorterInit:
		x.checkSorterInit(call)
	case SorterInsert:
		x.checkSorterInsert(call)
	case SorterSort, SorterSortParallel, SorterSortTopKParallel:
		x.checkSorterSort(call, builtin)
	case SorterFree:
		x.checkSorterFree(call)
	case SorterIterInit, SorterIterHasNext, SorterIterNext,
		SorterIterGetRow, SorterIterClose:
		x.checkSorterIter(call, builtin)
	case OutputAlloc, OutputAdvance, OutputSetNull, OutputFinalize:
		x.checkOutput(call, builtin)
	case IndexIteratorInit:
		x.checkIndexIteratorInit(call)
	case IndexIteratorScanKey:
		x.checkIndexIteratorScanKey(call)
	case IndexIteratorFree:
		x.checkIndexIteratorFree(call)
	case Insert:
		x.checkInsert(call)
	case ACos, ASin, ATan, ATan2, Cos, Cot, Sin, Tan:
		x.checkMathTrig(call, builtin)
	case SizeOf:
		x.checkSizeOf(call)
	default:
		panic("unhandled builtin " + builtin.String())
	}
}

func (x *Checker) checkSQLConversion(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCount(call, 1) {
		return
	}
	input := call.Arg(0).Type()
	switch builtin {
	case BoolToSQL:
		if !types.IsBool(input) {
			x.errs.Report(call.Pos(), InvalidSQLConversion,
				"cannot convert %s to a SQL Boolean", input)
			return
		}
		call.SetType(x.builtinType(types.Boolean))
	case IntToSQL:
		if !types.IsInteger(input) {
			x.errs.Report(call.Pos(), InvalidSQLConversion,
				"cannot convert %s to a SQL Integer", input)
			return
		}
		call.SetType(x.builtinType(types.Integer))
	case FloatToSQL:
		if !types.IsFloat(input) {
			x.errs.Report(call.Pos(), InvalidSQLConversion,
				"cannot convert %s to a SQL Real", input)
			return
		}
		call.SetType(x.builtinType(types.Real))
	case SQLToBool:
		if !types.IsBuiltin(input, types.Boolean) {
			x.errs.Report(call.Pos(), InvalidSQLConversion,
				"cannot convert %s to a native bool", input)
			return
		}
		call.SetType(x.builtinType(types.Bool))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkFilter(call *ast.CallExpr) {
	if !x.checkArgCount(call, 3) {
		return
	}

	// The first argument must be a pointer to a
	// ProjectedColumnsIterator.
	if !types.IsPointerTo(call.Arg(0).Type(), types.ProjectedColumnsIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.ProjectedColumnsIterator))
		return
	}

	// The second argument is the column index.
	if !types.IsBuiltin(call.Arg(1).Type(), types.Int32) {
		x.reportIncorrectArg(call, 1, x.builtinType(types.Int32))
		return
	}

	// The filter value argument is bound by the runtime; it is not
	// validated here.
	call.SetType(x.builtinType(types.Int32))
}

func (x *Checker) checkAggHashTable(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.AggregationHashTable) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.AggregationHashTable))
		return
	}

	switch builtin {
	case AggHashTableInit:
		if !x.checkArgCount(call, 3) {
			return
		}
		// Second argument is the memory pool.
		if !types.IsPointerTo(call.Arg(1).Type(), types.MemoryPool) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.MemoryPool))
			return
		}
		// Third argument is the payload size.
		if !types.IsBuiltin(call.Arg(2).Type(), types.Uint32) {
			x.reportIncorrectArg(call, 2, x.builtinType(types.Uint32))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggHashTableInsert:
		if !x.checkArgCount(call, 2) {
			return
		}
		// Second argument is the hash value.
		if !types.IsBuiltin(call.Arg(1).Type(), types.Uint64) {
			x.reportIncorrectArg(call, 1, x.builtinType(types.Uint64))
			return
		}
		// Returns a pointer to the inserted slot.
		call.SetType(x.pointerTo(types.Uint8))
	case AggHashTableLookup:
		if !x.checkArgCount(call, 4) {
			return
		}
		if !types.IsBuiltin(call.Arg(1).Type(), types.Uint64) {
			x.reportIncorrectArg(call, 1, x.builtinType(types.Uint64))
			return
		}
		// Third argument is the key-equality function.
		if !types.IsFunction(call.Arg(2).Type()) {
			x.reportIncorrectArg(call, 2, "function")
			return
		}
		// Fourth argument is the probe tuple; any pointer will do.
		if !types.IsPointer(call.Arg(3).Type()) {
			x.reportIncorrectArg(call, 3, "pointer")
			return
		}
		call.SetType(x.pointerTo(types.Uint8))
	case AggHashTableProcessBatch:
		if !x.checkArgCount(call, 7) {
			return
		}
		// Second argument is the array of projected columns
		// iterators.
		if !types.IsPointer(call.Arg(1).Type()) {
			x.reportIncorrectArg(call, 1, "pointer")
			return
		}
		// The hash, key-check, advance, and init callbacks.
		if !allFunctions(call.Arg(2).Type(), call.Arg(3).Type(),
			call.Arg(4).Type(), call.Arg(5).Type()) {
			x.reportIncorrectArg(call, 2, "function")
			return
		}
		// Last argument is the partitioned-aggregation flag.
		if !types.IsBool(call.Arg(6).Type()) {
			x.reportIncorrectArg(call, 6, x.builtinType(types.Bool))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggHashTableMovePartitions:
		if !x.checkArgCount(call, 4) {
			return
		}
		if !types.IsPointerTo(call.Arg(1).Type(), types.ThreadStateContainer) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.ThreadStateContainer))
			return
		}
		// Third argument is the hash table's offset in thread-local
		// state.
		if !types.IsBuiltin(call.Arg(2).Type(), types.Uint32) {
			x.reportIncorrectArg(call, 2, x.builtinType(types.Uint32))
			return
		}
		// Fourth argument is the merging function.
		if !types.IsFunction(call.Arg(3).Type()) {
			x.reportIncorrectArg(call, 3, "function")
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggHashTableParallelPartitionedScan:
		if !x.checkArgCount(call, 4) {
			return
		}
		// Second argument is an opaque context pointer.
		if !types.IsPointer(call.Arg(1).Type()) {
			x.reportIncorrectArg(call, 1, "pointer")
			return
		}
		if !types.IsPointerTo(call.Arg(2).Type(), types.ThreadStateContainer) {
			x.reportIncorrectArg(call, 2, x.pointerTo(types.ThreadStateContainer))
			return
		}
		// Fourth argument is the scanning function.
		if !types.IsFunction(call.Arg(3).Type()) {
			x.reportIncorrectArg(call, 3, "function")
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggHashTableFree:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Nil))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkAggHashTableIter(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.AggregationHashTableIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.AggregationHashTableIterator))
		return
	}

	switch builtin {
	case AggHashTableIterInit:
		if !x.checkArgCount(call, 2) {
			return
		}
		// Second argument is the hash table to iterate.
		if !types.IsPointerTo(call.Arg(1).Type(), types.AggregationHashTable) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.AggregationHashTable))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggHashTableIterHasNext:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Bool))
	case AggHashTableIterNext:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggHashTableIterGetRow:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.pointerTo(types.Uint8))
	case AggHashTableIterClose:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Nil))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkAggPartIter(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.AggOverflowPartIter) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.AggOverflowPartIter))
		return
	}

	switch builtin {
	case AggPartIterHasNext:
		call.SetType(x.builtinType(types.Bool))
	case AggPartIterNext:
		call.SetType(x.builtinType(types.Nil))
	case AggPartIterGetRow:
		call.SetType(x.pointerTo(types.Uint8))
	case AggPartIterGetHash:
		call.SetType(x.builtinType(types.Uint64))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkAggregator(call *ast.CallExpr, builtin Builtin) {
	switch builtin {
	case AggInit, AggReset:
		// Every argument must be a SQL aggregator.
		if !x.checkArgCountAtLeast(call, 1) {
			return
		}
		for i := 0; i < call.NumArgs(); i++ {
			if !isPointerToAggregatorValue(call.Arg(i).Type()) {
				x.errs.Report(call.Pos(), NotASQLAggregate,
					"%s is not a SQL aggregate", call.Arg(i).Type())
				return
			}
		}
		call.SetType(x.builtinType(types.Nil))
	case AggAdvance:
		if !x.checkArgCount(call, 2) {
			return
		}
		// The first argument must be a SQL aggregator, the second a
		// SQL value.
		if !isPointerToAggregatorValue(call.Arg(0).Type()) {
			x.errs.Report(call.Pos(), NotASQLAggregate,
				"%s is not a SQL aggregate", call.Arg(0).Type())
			return
		}
		if !isPointerToSQLValue(call.Arg(1).Type()) {
			x.errs.Report(call.Pos(), NotASQLAggregate,
				"%s is not a SQL value", call.Arg(1).Type())
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggMerge:
		if !x.checkArgCount(call, 2) {
			return
		}
		// Both arguments must be SQL aggregators; the diagnostic
		// names whichever is not.
		arg0IsAgg := isPointerToAggregatorValue(call.Arg(0).Type())
		arg1IsAgg := isPointerToAggregatorValue(call.Arg(1).Type())
		if !arg0IsAgg || !arg1IsAgg {
			bad := call.Arg(0).Type()
			if arg0IsAgg {
				bad = call.Arg(1).Type()
			}
			x.errs.Report(call.Pos(), NotASQLAggregate,
				"%s is not a SQL aggregate", bad)
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case AggResult:
		if !x.checkArgCount(call, 1) {
			return
		}
		if !isPointerToAggregatorValue(call.Arg(0).Type()) {
			x.errs.Report(call.Pos(), NotASQLAggregate,
				"%s is not a SQL aggregate", call.Arg(0).Type())
			return
		}
		call.SetType(x.builtinType(types.Integer))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkJoinHashTableInit(call *ast.CallExpr) {
	if !x.checkArgCount(call, 3) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTable) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTable))
		return
	}

	// Second argument is the memory pool.
	if !types.IsPointerTo(call.Arg(1).Type(), types.MemoryPool) {
		x.reportIncorrectArg(call, 1, x.pointerTo(types.MemoryPool))
		return
	}

	// Third argument is the size of the materialized tuples.
	if !types.IsInteger(call.Arg(2).Type()) {
		x.reportIncorrectArg(call, 2, x.builtinType(types.Uint32))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkJoinHashTableInsert(call *ast.CallExpr) {
	if !x.checkArgCount(call, 2) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTable) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTable))
		return
	}

	// Second argument is the hash value.
	if !types.IsBuiltin(call.Arg(1).Type(), types.Uint64) {
		x.reportIncorrectArg(call, 1, x.builtinType(types.Uint64))
		return
	}

	call.SetType(x.pointerTo(types.Uint8))
}

func (x *Checker) checkJoinHashTableBuild(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTable) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTable))
		return
	}

	switch builtin {
	case JoinHashTableBuild:
		if !x.checkArgCount(call, 1) {
			return
		}
	case JoinHashTableBuildParallel:
		if !x.checkArgCount(call, 3) {
			return
		}
		// Second argument is the thread state container holding the
		// per-worker partial tables.
		if !types.IsPointerTo(call.Arg(1).Type(), types.ThreadStateContainer) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.ThreadStateContainer))
			return
		}
		// Third argument is the table's offset in thread-local state.
		if !types.IsBuiltin(call.Arg(2).Type(), types.Uint32) {
			x.reportIncorrectArg(call, 2, x.builtinType(types.Uint32))
			return
		}
	default:
		panic("impossible")
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkJoinHashTableFree(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTable) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTable))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkJoinHashTableIterInit(call *ast.CallExpr) {
	if !x.checkArgCount(call, 3) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTableIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTableIterator))
		return
	}

	if !types.IsPointerTo(call.Arg(1).Type(), types.JoinHashTable) {
		x.reportIncorrectArg(call, 1, x.pointerTo(types.JoinHashTable))
		return
	}

	// Third argument is the probe hash value.
	if !types.IsBuiltin(call.Arg(2).Type(), types.Uint64) {
		x.reportIncorrectArg(call, 2, x.builtinType(types.Uint64))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkJoinHashTableIterHasNext(call *ast.CallExpr) {
	if !x.checkArgCount(call, 4) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTableIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTableIterator))
		return
	}

	// Second argument is the key-equality function: exactly three
	// pointer parameters, returning bool.
	keyEq, ok := call.Arg(1).Type().(*types.FunctionType)
	if !ok || keyEq.NumParams() != 3 ||
		!types.IsBool(keyEq.Ret()) ||
		!types.IsPointer(keyEq.Params()[0].Type) ||
		!types.IsPointer(keyEq.Params()[1].Type) ||
		!types.IsPointer(keyEq.Params()[2].Type) {
		x.errs.Report(call.Pos(), BadEqualityFunctionShape,
			"%s is not a key-equality function; expected func(pointer, pointer, pointer) bool",
			call.Arg(1).Type())
		return
	}

	// The probe tuple and the opaque context are arbitrary pointers.
	if !types.IsPointer(call.Arg(2).Type()) {
		x.reportIncorrectArg(call, 2, "pointer")
		return
	}
	if !types.IsPointer(call.Arg(3).Type()) {
		x.reportIncorrectArg(call, 3, "pointer")
		return
	}

	call.SetType(x.builtinType(types.Bool))
}

func (x *Checker) checkJoinHashTableIterGetRow(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTableIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTableIterator))
		return
	}

	call.SetType(x.pointerTo(types.Uint8))
}

func (x *Checker) checkJoinHashTableIterClose(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.JoinHashTableIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.JoinHashTableIterator))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkExecutionContext(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.ExecutionContext) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.ExecutionContext))
		return
	}

	call.SetType(x.pointerTo(types.MemoryPool))
}

func (x *Checker) checkThreadStateContainer(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.ThreadStateContainer) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.ThreadStateContainer))
		return
	}

	switch builtin {
	case ThreadStateContainerInit:
		if !x.checkArgCount(call, 2) {
			return
		}
		if !types.IsPointerTo(call.Arg(1).Type(), types.MemoryPool) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.MemoryPool))
			return
		}
	case ThreadStateContainerFree:
		if !x.checkArgCount(call, 1) {
			return
		}
	case ThreadStateContainerReset:
		if !x.checkArgCount(call, 5) {
			return
		}
		// Second argument is the size of each worker's state block.
		if !types.IsBuiltin(call.Arg(1).Type(), types.Uint32) {
			x.reportIncorrectArg(call, 1, x.builtinType(types.Uint32))
			return
		}
		// Third and fourth arguments are the per-worker init and
		// teardown callbacks. Only that they are functions is
		// checked; their parameter shapes are not.
		if !types.IsFunction(call.Arg(2).Type()) ||
			!types.IsFunction(call.Arg(3).Type()) {
			x.reportIncorrectArg(call, 2, "function")
			return
		}
		// Fifth argument is an opaque context, a pointer or nil.
		if !types.IsPointer(call.Arg(4).Type()) &&
			!types.IsNil(call.Arg(4).Type()) {
			x.reportIncorrectArg(call, 4, "pointer")
			return
		}
	case ThreadStateContainerIterate:
		if !x.checkArgCount(call, 3) {
			return
		}
		// Second argument is an opaque context pointer.
		if !types.IsPointer(call.Arg(1).Type()) {
			x.reportIncorrectArg(call, 1, "pointer")
			return
		}
		// Third argument is the iteration callback.
		if !types.IsFunction(call.Arg(2).Type()) {
			x.reportIncorrectArg(call, 2, "function")
			return
		}
	default:
		panic("impossible")
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkTableIter(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.TableVectorIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.TableVectorIterator))
		return
	}

	switch builtin {
	case TableIterInit:
		if !x.checkArgCount(call, 3) {
			return
		}
		// The table name must be a string literal so the runtime can
		// bind the table at code-generation time.
		if _, ok := call.Arg(1).(*ast.StringLit); !ok {
			x.reportIncorrectArg(call, 1, x.ctx.StringType())
			return
		}
		if !types.IsPointerTo(call.Arg(2).Type(), types.ExecutionContext) {
			x.reportIncorrectArg(call, 2, x.pointerTo(types.ExecutionContext))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case TableIterAdvance:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Bool))
	case TableIterGetPCI:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.pointerTo(types.ProjectedColumnsIterator))
	case TableIterClose:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Nil))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkTableIterParallel(call *ast.CallExpr) {
	if !x.checkArgCount(call, 4) {
		return
	}

	// First argument is the table name as a string literal.
	if _, ok := call.Arg(0).(*ast.StringLit); !ok {
		x.reportIncorrectArg(call, 0, x.ctx.StringType())
		return
	}

	// Second argument is the opaque query state.
	if !types.IsPointer(call.Arg(1).Type()) {
		x.reportIncorrectArg(call, 1, "pointer")
		return
	}

	// Third argument is the thread state container.
	if !types.IsPointerTo(call.Arg(2).Type(), types.ThreadStateContainer) {
		x.reportIncorrectArg(call, 2, x.pointerTo(types.ThreadStateContainer))
		return
	}

	// Fourth argument is the per-chunk scan callback: three pointer
	// parameters, the last a *ProjectedColumnsIterator.
	scanFn, ok := call.Arg(3).Type().(*types.FunctionType)
	if !ok {
		x.errs.Report(call.Pos(), BadScanFunctionShape,
			"%s is not a parallel scan function", call.Arg(3).Type())
		return
	}
	params := scanFn.Params()
	if len(params) != 3 ||
		!types.IsPointer(params[0].Type) ||
		!types.IsPointer(params[1].Type) ||
		!types.IsPointerTo(params[2].Type, types.ProjectedColumnsIterator) {
		x.errs.Report(call.Pos(), BadScanFunctionShape,
			"%s is not a parallel scan function", call.Arg(3).Type())
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkPCI(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.ProjectedColumnsIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.ProjectedColumnsIterator))
		return
	}

	switch builtin {
	case PCIIsFiltered, PCIHasNext, PCIHasNextFiltered,
		PCIAdvance, PCIAdvanceFiltered, PCIReset, PCIResetFiltered:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Bool))
	case PCIMatch:
		if !x.checkArgCount(call, 2) {
			return
		}
		// A SQL Boolean predicate is implicitly cast to native bool;
		// callers may pass either representation.
		match := call.Arg(1)
		if types.IsBuiltin(match.Type(), types.Boolean) {
			match = x.implCastToType(match, ast.SQLBoolToBool, x.builtinType(types.Bool))
			call.SetArg(1, match)
		}
		if !types.IsBool(match.Type()) {
			x.reportIncorrectArg(call, 1, x.builtinType(types.Bool))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case PCIGetSmallInt, PCIGetInt, PCIGetBigInt:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Integer))
	case PCIGetReal, PCIGetDouble:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Real))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkHash(call *ast.CallExpr) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	// Every argument must be a SQL value.
	for _, arg := range call.Args {
		if !types.IsSQLValue(arg.Type()) {
			x.errs.Report(arg.Pos(), BadHashArgument,
				"cannot hash %s; all arguments must be SQL values", arg.Type())
			return
		}
	}

	call.SetType(x.builtinType(types.Uint64))
}

func (x *Checker) checkFilterManager(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.FilterManager) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.FilterManager))
		return
	}

	switch builtin {
	case FilterManagerInit, FilterManagerFinalize, FilterManagerFree:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case FilterManagerInsertFilter:
		// Every trailing argument is a filter implementation: a
		// function of one *ProjectedColumnsIterator parameter
		// returning an integer.
		for i := 1; i < call.NumArgs(); i++ {
			fn, ok := call.Arg(i).Type().(*types.FunctionType)
			if !ok || !types.IsInteger(fn.Ret()) ||
				fn.NumParams() != 1 ||
				!types.IsPointerTo(fn.Params()[0].Type, types.ProjectedColumnsIterator) {
				x.reportIncorrectArg(call, i,
					"func(*ProjectedColumnsIterator) integer")
				return
			}
		}
		call.SetType(x.builtinType(types.Nil))
	case FilterManagerRunFilters:
		if !x.checkArgCount(call, 2) {
			return
		}
		if !types.IsPointerTo(call.Arg(1).Type(), types.ProjectedColumnsIterator) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.ProjectedColumnsIterator))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkMathTrig(call *ast.CallExpr, builtin Builtin) {
	switch builtin {
	case ATan2:
		if !x.checkArgCount(call, 2) {
			return
		}
		for i := 0; i < 2; i++ {
			if !types.IsBuiltin(call.Arg(i).Type(), types.Real) {
				x.reportIncorrectArg(call, i, x.builtinType(types.Real))
				return
			}
		}
	case ACos, ASin, ATan, Cos, Cot, Sin, Tan:
		if !x.checkArgCount(call, 1) {
			return
		}
		if !types.IsBuiltin(call.Arg(0).Type(), types.Real) {
			x.reportIncorrectArg(call, 0, x.builtinType(types.Real))
			return
		}
	default:
		panic("impossible")
	}

	call.SetType(x.builtinType(types.Real))
}

func (x *Checker) checkSizeOf(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	// The runtime computes the size of whatever type expression is
	// present; nothing further to validate.
	call.SetType(x.builtinType(types.Uint32))
}

// checkPtrCast checks the pointer-cast intrinsic. Its first argument
// parses as a dereference expression rather than a type, and must be
// rewritten into a pointer type representation before resolution.
// This is the one intrinsic whose arguments are not pre-resolved by
// the dispatcher.
func (x *Checker) checkPtrCast(call *ast.CallExpr) {
	if !x.checkArgCount(call, 2) {
		return
	}

	unary, ok := call.Arg(0).(*ast.UnaryExpr)
	if !ok || unary.Op != ast.Deref {
		x.errs.Report(call.Pos(), BadCastTarget,
			"ptrCast target must be a pointer type")
		return
	}

	// Replace the dereference with the pointer type it spells.
	call.SetArg(0, ast.NewPointerRepr(unary.Pos(), unary.X))

	for _, arg := range call.Args {
		if x.Resolve(arg) == nil {
			return
		}
	}

	// Both the target and the operand must be pointers.
	if !types.IsPointer(call.Arg(0).Type()) {
		x.errs.Report(call.Pos(), BadCastTarget,
			"ptrCast target %s is not a pointer type", call.Arg(0).Type())
		return
	}
	if !types.IsPointer(call.Arg(1).Type()) {
		x.errs.Report(call.Pos(), BadCastTarget,
			"cannot ptrCast non-pointer type %s", call.Arg(1).Type())
		return
	}

	call.SetType(call.Arg(0).Type())
}

func (x *Checker) checkSorterInit(call *ast.CallExpr) {
	if !x.checkArgCount(call, 4) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.Sorter) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.Sorter))
		return
	}

	// Second argument is the memory pool.
	if !types.IsPointerTo(call.Arg(1).Type(), types.MemoryPool) {
		x.reportIncorrectArg(call, 1, x.pointerTo(types.MemoryPool))
		return
	}

	// Third argument is the three-way comparator: two pointer
	// parameters returning a signed 32-bit integer.
	cmp, ok := call.Arg(2).Type().(*types.FunctionType)
	if !ok || cmp.NumParams() != 2 ||
		!types.IsBuiltin(cmp.Ret(), types.Int32) ||
		!types.IsPointer(cmp.Params()[0].Type) ||
		!types.IsPointer(cmp.Params()[1].Type) {
		x.errs.Report(call.Pos(), BadComparisonFunctionShape,
			"%s is not a sorter comparison function; expected func(pointer, pointer) int32",
			call.Arg(2).Type())
		return
	}

	// Fourth argument is the tuple size.
	if !types.IsBuiltin(call.Arg(3).Type(), types.Uint32) {
		x.reportIncorrectArg(call, 3, x.builtinType(types.Uint32))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkSorterInsert(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.Sorter) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.Sorter))
		return
	}

	// Returns a pointer to the allocated slot.
	call.SetType(x.pointerTo(types.Uint8))
}

func (x *Checker) checkSorterSort(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.Sorter) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.Sorter))
		return
	}

	switch builtin {
	case SorterSort:
		if !x.checkArgCount(call, 1) {
			return
		}
	case SorterSortParallel, SorterSortTopKParallel:
		want := 3
		if builtin == SorterSortTopKParallel {
			want = 4
		}
		if !x.checkArgCount(call, want) {
			return
		}
		if !types.IsPointerTo(call.Arg(1).Type(), types.ThreadStateContainer) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.ThreadStateContainer))
			return
		}
		// Third argument is the sorter's offset in thread-local
		// state.
		if !types.IsBuiltin(call.Arg(2).Type(), types.Uint32) {
			x.reportIncorrectArg(call, 2, x.builtinType(types.Uint32))
			return
		}
		if builtin == SorterSortTopKParallel {
			// Last argument is the top-K bound.
			if !types.IsBuiltin(call.Arg(3).Type(), types.Uint64) {
				x.reportIncorrectArg(call, 3, x.builtinType(types.Uint64))
				return
			}
		}
	default:
		panic("impossible")
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkSorterFree(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.Sorter) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.Sorter))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkSorterIter(call *ast.CallExpr, builtin Builtin) {
	if !x.checkArgCountAtLeast(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.SorterIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.SorterIterator))
		return
	}

	switch builtin {
	case SorterIterInit:
		if !x.checkArgCount(call, 2) {
			return
		}
		// Second argument is the sorter to iterate.
		if !types.IsPointerTo(call.Arg(1).Type(), types.Sorter) {
			x.reportIncorrectArg(call, 1, x.pointerTo(types.Sorter))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case SorterIterHasNext:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Bool))
	case SorterIterNext:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Nil))
	case SorterIterGetRow:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.pointerTo(types.Uint8))
	case SorterIterClose:
		if !x.checkArgCount(call, 1) {
			return
		}
		call.SetType(x.builtinType(types.Nil))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkOutput(call *ast.CallExpr, builtin Builtin) {
	want := 1
	if builtin == OutputSetNull {
		want = 2
	}
	if !x.checkArgCount(call, want) {
		return
	}

	// Output buffers hang off the execution context.
	if !types.IsPointerTo(call.Arg(0).Type(), types.ExecutionContext) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.ExecutionContext))
		return
	}

	switch builtin {
	case OutputAlloc:
		call.SetType(x.pointerTo(types.Uint8))
	case OutputAdvance, OutputFinalize:
		call.SetType(x.builtinType(types.Nil))
	case OutputSetNull:
		// Second argument is the column index.
		if !types.IsInteger(call.Arg(1).Type()) {
			x.reportIncorrectArg(call, 1, x.builtinType(types.Uint32))
			return
		}
		call.SetType(x.builtinType(types.Nil))
	default:
		panic("impossible")
	}
}

func (x *Checker) checkIndexIteratorInit(call *ast.CallExpr) {
	if !x.checkArgCount(call, 3) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.IndexIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.IndexIterator))
		return
	}

	// Second argument is the index name.
	if !types.IsString(call.Arg(1).Type()) {
		x.reportIncorrectArg(call, 1, x.ctx.StringType())
		return
	}

	if !types.IsPointerTo(call.Arg(2).Type(), types.ExecutionContext) {
		x.reportIncorrectArg(call, 2, x.pointerTo(types.ExecutionContext))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkIndexIteratorScanKey(call *ast.CallExpr) {
	if !x.checkArgCount(call, 2) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.IndexIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.IndexIterator))
		return
	}

	// Second argument is the key as a byte array.
	if !types.IsPointerTo(call.Arg(1).Type(), types.Int8) {
		x.reportIncorrectArg(call, 1, x.pointerTo(types.Int8))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkIndexIteratorFree(call *ast.CallExpr) {
	if !x.checkArgCount(call, 1) {
		return
	}

	if !types.IsPointerTo(call.Arg(0).Type(), types.IndexIterator) {
		x.reportIncorrectArg(call, 0, x.pointerTo(types.IndexIterator))
		return
	}

	call.SetType(x.builtinType(types.Nil))
}

func (x *Checker) checkInsert(call *ast.CallExpr) {
	// The insert runtime hook is still settling; only the arity is
	// checked for now.
	if !x.checkArgCount(call, 3) {
		return
	}
	call.SetType(x.builtinType(types.Nil))
}
