package sema

// A Builtin identifies one intrinsic: a compiler-recognized operation
// bound to a fixed vectorized runtime primitive rather than to user
// code. The catalog is closed; every identity dispatches to exactly
// one family checker in check_builtin.go.
type Builtin int

// The intrinsic catalog.
const (
	// SQL value conversions.
	BoolToSQL Builtin = iota + 1
	IntToSQL
	FloatToSQL
	SQLToBool

	// Vectorized filter comparisons.
	FilterEq
	FilterGe
	FilterGt
	FilterLe
	FilterLt
	FilterNe

	// Execution context.
	ExecCtxGetMem

	// Thread-local state containers.
	ThreadStateContainerInit
	ThreadStateContainerReset
	ThreadStateContainerIterate
	ThreadStateContainerFree

	// Table vector iterators.
	TableIterInit
	TableIterAdvance
	TableIterGetPCI
	TableIterClose
	TableIterParallel

	// Projected columns iterators.
	PCIIsFiltered
	PCIHasNext
	PCIHasNextFiltered
	PCIAdvance
	PCIAdvanceFiltered
	PCIMatch
	PCIReset
	PCIResetFiltered
	PCIGetSmallInt
	PCIGetInt
	PCIGetBigInt
	PCIGetReal
	PCIGetDouble

	// Hashing.
	Hash

	// Filter managers.
	FilterManagerInit
	FilterManagerInsertFilter
	FilterManagerFinalize
	FilterManagerRunFilters
	FilterManagerFree

	// Aggregation hash tables.
	AggHashTableInit
	AggHashTableInsert
	AggHashTableLookup
	AggHashTableProcessBatch
	AggHashTableMovePartitions
	AggHashTableParallelPartitionedScan
	AggHashTableFree

	// Aggregation hash table iterators.
	AggHashTableIterInit
	AggHashTableIterHasNext
	AggHashTableIterNext
	AggHashTableIterGetRow
	AggHashTableIterClose

	// Aggregation overflow partition iterators.
	AggPartIterHasNext
	AggPartIterNext
	AggPartIterGetRow
	AggPartIterGetHash

	// Aggregator values.
	AggInit
	AggAdvance
	AggMerge
	AggReset
	AggResult

	// Join hash tables.
	JoinHashTableInit
	JoinHashTableInsert
	JoinHashTableBuild
	JoinHashTableBuildParallel
	JoinHashTableFree

	// Join hash table iterators.
	JoinHashTableIterInit
	JoinHashTableIterHasNext
	JoinHashTableIterGetRow
	JoinHashTableIterClose

	// Sorters.
	SorterInit
	SorterInsert
	SorterSort
	SorterSortParallel
	SorterSortTopKParallel
	SorterFree

	// Sorter iterators.
	SorterIterInit
	SorterIterHasNext
	SorterIterNext
	SorterIterGetRow
	SorterIterClose

	// Output buffers.
	OutputAlloc
	OutputAdvance
	OutputSetNull
	OutputFinalize

	// Index iterators.
	IndexIteratorInit
	IndexIteratorScanKey
	IndexIteratorFree

	// Table insertion.
	Insert

	// Trigonometric functions.
	ACos
	ASin
	ATan
	ATan2
	Cos
	Cot
	Sin
	Tan

	// Miscellaneous.
	SizeOf
	PtrCast
)

// builtinNames maps every intrinsic to its source-level name.
// The '@' sigil that marks a builtin call belongs to the lexer,
// not to the name.
var builtinNames = map[Builtin]string{
	BoolToSQL:                           "boolToSql",
	IntToSQL:                            "intToSql",
	FloatToSQL:                          "floatToSql",
	SQLToBool:                           "sqlToBool",
	FilterEq:                            "filterEq",
	FilterGe:                            "filterGe",
	FilterGt:                            "filterGt",
	FilterLe:                            "filterLe",
	FilterLt:                            "filterLt",
	FilterNe:                            "filterNe",
	ExecCtxGetMem:                       "execCtxGetMem",
	ThreadStateContainerInit:            "tlsInit",
	ThreadStateContainerReset:           "tlsReset",
	ThreadStateContainerIterate:         "tlsIterate",
	ThreadStateContainerFree:            "tlsFree",
	TableIterInit:                       "tableIterInit",
	TableIterAdvance:                    "tableIterAdvance",
	TableIterGetPCI:                     "tableIterGetPCI",
	TableIterClose:                      "tableIterClose",
	TableIterParallel:                   "iterateTableParallel",
	PCIIsFiltered:                       "pciIsFiltered",
	PCIHasNext:                          "pciHasNext",
	PCIHasNextFiltered:                  "pciHasNextFiltered",
	PCIAdvance:                          "pciAdvance",
	PCIAdvanceFiltered:                  "pciAdvanceFiltered",
	PCIMatch:                            "pciMatch",
	PCIReset:                            "pciReset",
	PCIResetFiltered:                    "pciResetFiltered",
	PCIGetSmallInt:                      "pciGetSmallInt",
	PCIGetInt:                           "pciGetInt",
	PCIGetBigInt:                        "pciGetBigInt",
	PCIGetReal:                          "pciGetReal",
	PCIGetDouble:                        "pciGetDouble",
	Hash:                                "hash",
	FilterManagerInit:                   "filterManagerInit",
	FilterManagerInsertFilter:           "filterManagerInsertFilter",
	FilterManagerFinalize:               "filterManagerFinalize",
	FilterManagerRunFilters:             "filtersRun",
	FilterManagerFree:                   "filterManagerFree",
	AggHashTableInit:                    "aggHTInit",
	AggHashTableInsert:                  "aggHTInsert",
	AggHashTableLookup:                  "aggHTLookup",
	AggHashTableProcessBatch:            "aggHTProcessBatch",
	AggHashTableMovePartitions:          "aggHTMoveParts",
	AggHashTableParallelPartitionedScan: "aggHTParallelPartScan",
	AggHashTableFree:                    "aggHTFree",
	AggHashTableIterInit:                "aggHTIterInit",
	AggHashTableIterHasNext:             "aggHTIterHasNext",
	AggHashTableIterNext:                "aggHTIterNext",
	AggHashTableIterGetRow:              "aggHTIterGetRow",
	AggHashTableIterClose:               "aggHTIterClose",
	AggPartIterHasNext:                  "aggPartIterHasNext",
	AggPartIterNext:                     "aggPartIterNext",
	AggPartIterGetRow:                   "aggPartIterGetRow",
	AggPartIterGetHash:                  "aggPartIterGetHash",
	AggInit:                             "aggInit",
	AggAdvance:                          "aggAdvance",
	AggMerge:                            "aggMerge",
	AggReset:                            "aggReset",
	AggResult:                           "aggResult",
	JoinHashTableInit:                   "joinHTInit",
	JoinHashTableInsert:                 "joinHTInsert",
	JoinHashTableBuild:                  "joinHTBuild",
	JoinHashTableBuildParallel:          "joinHTBuildParallel",
	JoinHashTableFree:                   "joinHTFree",
	JoinHashTableIterInit:               "joinHTIterInit",
	JoinHashTableIterHasNext:            "joinHTIterHasNext",
	JoinHashTableIterGetRow:             "joinHTIterGetRow",
	JoinHashTableIterClose:              "joinHTIterClose",
	SorterInit:                          "sorterInit",
	SorterInsert:                        "sorterInsert",
	SorterSort:                          "sorterSort",
	SorterSortParallel:                  "sorterSortParallel",
	SorterSortTopKParallel:              "sorterSortTopKParallel",
	SorterFree:                          "sorterFree",
	SorterIterInit:                      "sorterIterInit",
	SorterIterHasNext:                   "sorterIterHasNext",
	SorterIterNext:                      "sorterIterNext",
	SorterIterGetRow:                    "sorterIterGetRow",
	SorterIterClose:                     "sorterIterClose",
	OutputAlloc:                         "outputAlloc",
	OutputAdvance:                       "outputAdvance",
	OutputSetNull:                       "outputSetNull",
	OutputFinalize:                      "outputFinalize",
	IndexIteratorInit:                   "indexIteratorInit",
	IndexIteratorScanKey:                "indexIteratorScanKey",
	IndexIteratorFree:                   "indexIteratorFree",
	Insert:                              "insert",
	ACos:                                "acos",
	ASin:                                "asin",
	ATan:                                "atan",
	ATan2:                               "atan2",
	Cos:                                 "cos",
	Cot:                                 "cot",
	Sin:                                 "sin",
	Tan:                                 "tan",
	SizeOf:                              "sizeOf",
	PtrCast:                             "ptrCast",
}

var builtinByName = make(map[string]Builtin, len(builtinNames))

func init() {
	for b, n := range builtinNames {
		builtinByName[n] = b
	}
}

func (b Builtin) String() string {
	if n, ok := builtinNames[b]; ok {
		return n
	}
	panic("impossible")
}

// LookupBuiltin resolves a callee name against the intrinsic catalog.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtinByName[name]
	return b, ok
}

// IsBuiltinName reports whether name is a reserved intrinsic name.
func IsBuiltinName(name string) bool {
	_, ok := builtinByName[name]
	return ok
}
