package convert

import "github.com/leapstack-labs/flowhigh/pkg/model"

// decoders is keyed by lower-cased eltype. It is filled in init since the
// decoders reach back into it for nested elements.
var decoders map[string]decoder

func init() {
	decoders = map[string]decoder{
		"parseql":              decodeParSeQL,
		"statement":            decodeStatement,
		"createviewstatement":  decodeCreateViewStatement,
		"createtablestatement": decodeCreateTableStatement,
		"createstagestatement": decodeCreateStageStatement,
		"altertablestatement":  decodeAlterTableStatement,
		"insertstatement":      decodeInsertStatement,
		"copystatement":        decodeCopyStatement,
		"updatestatement":      decodeUpdateStatement,
		"deletestatement":      decodeDeleteStatement,
		"mergestatement":       decodeMergeStatement,
		"ds":                   decodeDs,
		"in":                   decodeIn,
		"out":                  decodeOut,
		"join":                 decodeJoin,
		"filter":               decodeFilter,
		"agg":                  decodeAgg,
		"sort":                 decodeSort,
		"page":                 decodePage,
		"frame":                decodeFrame,
		"tablesample":          decodeTableSample,
		"tablefunc":            decodeTableFunc,
		"matchrecognize":       decodeMatchRecognize,
		"queryingstage":        decodeQueryingStage,
		"rotate":               decodeRotate,
		"edge":                 decodeEdge,
		"attr":                 decodeAttr,
		"const":                decodeConst,
		"op":                   decodeOp,
		"func":                 decodeFunc,
		"cast":                 decodeCast,
		"case":                 decodeCase,
		"when":                 decodeWhen,
		"then":                 decodeThen,
		"else":                 decodeElse,
		"structref":            decodeStructRef,
		"asterisk":             decodeAsterisk,
		"array":                decodeArray,
		"row":                  decodeRow,
		"position":             decodePosition,
		"current":              decodeCurrent,
		"wrappedexpr":          decodeWrappedExpr,
		"dbohier":              decodeDBOHier,
		"dbo":                  decodeDBO,
		"antipatterns":         decodeAntiPatterns,
		"antipattern":          decodeAntiPattern,
	}
}

func decodeParSeQL(r *reader) model.Node {
	b := model.NewParSeQLBuilder()
	if v, ok := r.str("realmID"); ok {
		b.WithRealmID(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elems("statement"); ok {
		b.WithStatements(v)
	}
	if v, ok := r.str("namespace"); ok {
		b.WithNamespace(v)
	}
	if v, ok := r.str("location"); ok {
		b.WithLocation(v)
	}
	if v, ok := one[*model.DBOHier](r, "DBOHier", "DBOHier"); ok {
		b.WithDBOHier(v)
	}
	if v, ok := r.elems("error"); ok {
		b.WithErrors(v)
	}
	if v, ok := r.str("version"); ok {
		b.WithVersion(v)
	}
	if v, ok := r.str("ts"); ok {
		b.WithTS(v)
	}
	if v, ok := r.str("status"); ok {
		b.WithStatus(v)
	}
	return b.Build()
}

func decodeStatement(r *reader) model.Node {
	b := model.NewStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	return b.Build()
}

func decodeCreateViewStatement(r *reader) model.Node {
	b := model.NewCreateViewStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.ext("dialExt"); ok {
		b.WithDialExt(v)
	}
	if v, ok := r.str("subType"); ok {
		b.WithSubType(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeCreateTableStatement(r *reader) model.Node {
	b := model.NewCreateTableStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.ext("dialExt"); ok {
		b.WithDialExt(v)
	}
	if v, ok := r.str("subType"); ok {
		b.WithSubType(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeCreateStageStatement(r *reader) model.Node {
	b := model.NewCreateStageStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.ext("dialExt"); ok {
		b.WithDialExt(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeAlterTableStatement(r *reader) model.Node {
	b := model.NewAlterTableStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.ext("dialExt"); ok {
		b.WithDialExt(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeInsertStatement(r *reader) model.Node {
	b := model.NewInsertStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.ext("dialExt"); ok {
		b.WithDialExt(v)
	}
	if v, ok := r.str("subType"); ok {
		b.WithSubType(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeCopyStatement(r *reader) model.Node {
	b := model.NewCopyStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.ext("dialExt"); ok {
		b.WithDialExt(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeUpdateStatement(r *reader) model.Node {
	b := model.NewUpdateStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeDeleteStatement(r *reader) model.Node {
	b := model.NewDeleteStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeMergeStatement(r *reader) model.Node {
	b := model.NewMergeStatementBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("rawInput"); ok {
		b.WithRawInput(v)
	}
	if v, ok := r.elems("antiPatterns"); ok {
		b.WithAntiPatterns(v)
	}
	if v, ok := r.str("clusterLogicalID"); ok {
		b.WithClusterLogicalID(v)
	}
	if v, ok := r.str("clusterRawID"); ok {
		b.WithClusterRawID(v)
	}
	if v, ok := r.str("clusterTopologyHiID"); ok {
		b.WithClusterTopologyHiID(v)
	}
	if v, ok := r.str("clusterTopologyLoID"); ok {
		b.WithClusterTopologyLoID(v)
	}
	if v, ok := r.elems("ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeDs(r *reader) model.Node {
	b := model.NewDsBuilder()
	if v, ok := r.str("refsch"); ok {
		b.WithRefSch(v)
	}
	if v, ok := r.str("fullref"); ok {
		b.WithFullRef(v)
	}
	if v, ok := r.str("refdb"); ok {
		b.WithRefDB(v)
	}
	if v, ok := one[*model.In](r, "in", "In"); ok {
		b.WithIn(v)
	}
	if v, ok := one[*model.MatchRecognize](r, "matchRecognize", "MatchRecognize"); ok {
		b.WithMatchRecognize(v)
	}
	if v, ok := r.elems("setOp"); ok {
		b.WithSetOps(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.elems("modifiers"); ok {
		b.WithModifiers(v)
	}
	if v, ok := one[*model.Out](r, "out", "Out"); ok {
		b.WithOut(v)
	}
	if v, ok := r.str("oref"); ok {
		b.WithORef(v)
	}
	if v, ok := one[*model.TableSample](r, "tableSample", "TableSample"); ok {
		b.WithTableSample(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("sref"); ok {
		b.WithSRef(v)
	}
	if v, ok := r.str("refds"); ok {
		b.WithRefDs(v)
	}
	if v, ok := r.str("name"); ok {
		b.WithName(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("action"); ok {
		b.WithAction(v)
	}
	if v, ok := r.str("subType"); ok {
		b.WithSubType(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeIn(r *reader) model.Node {
	b := model.NewInBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	return b.Build()
}

func decodeOut(r *reader) model.Node {
	b := model.NewOutBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeJoin(r *reader) model.Node {
	b := model.NewJoinBuilder()
	if v, ok := r.elem("op"); ok {
		b.WithOp(v)
	}
	if v, ok := r.str("definedAs"); ok {
		b.WithDefinedAs(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("subType"); ok {
		b.WithSubType(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := one[*model.Ds](r, "ds", "Ds"); ok {
		b.WithDs(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeFilter(r *reader) model.Node {
	b := model.NewFilterBuilder()
	if v, ok := r.elem("op"); ok {
		b.WithOp(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeAgg(r *reader) model.Node {
	b := model.NewAggBuilder()
	if v, ok := r.elems("filter"); ok {
		b.WithFilters(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeSort(r *reader) model.Node {
	b := model.NewSortBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	return b.Build()
}

func decodePage(r *reader) model.Node {
	b := model.NewPageBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.elem("value"); ok {
		b.WithValue(v)
	}
	return b.Build()
}

func decodeFrame(r *reader) model.Node {
	b := model.NewFrameBuilder()
	if v, ok := r.elem("low_val"); ok {
		b.WithLowVal(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("hi_rel"); ok {
		b.WithHiRel(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.str("low_rel"); ok {
		b.WithLowRel(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	if v, ok := r.elem("hi_val"); ok {
		b.WithHiVal(v)
	}
	return b.Build()
}

func decodeTableSample(r *reader) model.Node {
	b := model.NewTableSampleBuilder()
	if v, ok := r.str("sampleMethod"); ok {
		b.WithSampleMethod(v)
	}
	if v, ok := r.str("seed"); ok {
		b.WithSeed(v)
	}
	if v, ok := r.str("seedType"); ok {
		b.WithSeedType(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elem("probability"); ok {
		b.WithProbability(v)
	}
	if v, ok := r.elem("num"); ok {
		b.WithNum(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("sampleType"); ok {
		b.WithSampleType(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeTableFunc(r *reader) model.Node {
	b := model.NewTableFuncBuilder()
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.elems("modifiers"); ok {
		b.WithModifiers(v)
	}
	if v, ok := one[*model.Out](r, "out", "Out"); ok {
		b.WithOut(v)
	}
	if v, ok := r.elems("partition"); ok {
		b.WithPartition(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("refds"); ok {
		b.WithRefDs(v)
	}
	if v, ok := r.elems("options"); ok {
		b.WithOptions(v)
	}
	if v, ok := r.str("action"); ok {
		b.WithAction(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("tableFuncType"); ok {
		b.WithTableFuncType(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	if v, ok := r.str("refsch"); ok {
		b.WithRefSch(v)
	}
	if v, ok := r.str("fullref"); ok {
		b.WithFullRef(v)
	}
	if v, ok := r.str("refdb"); ok {
		b.WithRefDB(v)
	}
	if v, ok := one[*model.In](r, "in", "In"); ok {
		b.WithIn(v)
	}
	if v, ok := one[*model.MatchRecognize](r, "matchRecognize", "MatchRecognize"); ok {
		b.WithMatchRecognize(v)
	}
	if v, ok := r.elems("setOp"); ok {
		b.WithSetOps(v)
	}
	if v, ok := one[*model.Sort](r, "sort", "Sort"); ok {
		b.WithSort(v)
	}
	if v, ok := one[*model.Ds](r, "subQuery", "Ds"); ok {
		b.WithSubQuery(v)
	}
	if v, ok := r.str("oref"); ok {
		b.WithORef(v)
	}
	if v, ok := one[*model.TableSample](r, "tableSample", "TableSample"); ok {
		b.WithTableSample(v)
	}
	if v, ok := r.elems("names"); ok {
		b.WithNames(v)
	}
	if v, ok := r.str("sref"); ok {
		b.WithSRef(v)
	}
	if v, ok := r.str("name"); ok {
		b.WithName(v)
	}
	if v, ok := r.elems("unnestExpressions"); ok {
		b.WithUnnestExpressions(v)
	}
	if v, ok := r.str("subType"); ok {
		b.WithSubType(v)
	}
	if v, ok := one[*model.Frame](r, "frame", "Frame"); ok {
		b.WithFrame(v)
	}
	return b.Build()
}

func decodeMatchRecognize(r *reader) model.Node {
	b := model.NewMatchRecognizeBuilder()
	if v, ok := r.elem("partitionBy"); ok {
		b.WithPartitionBy(v)
	}
	if v, ok := r.elem("measures"); ok {
		b.WithMeasures(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elem("define"); ok {
		b.WithDefine(v)
	}
	if v, ok := r.elem("pattern"); ok {
		b.WithPattern(v)
	}
	if v, ok := r.elem("rowMatchAction"); ok {
		b.WithRowMatchAction(v)
	}
	if v, ok := r.elem("orderBy"); ok {
		b.WithOrderBy(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("rowMatchCondition"); ok {
		b.WithRowMatchCondition(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeQueryingStage(r *reader) model.Node {
	b := model.NewQueryingStageBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("pattern"); ok {
		b.WithPattern(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("location"); ok {
		b.WithLocation(v)
	}
	if v, ok := r.str("fileFormat"); ok {
		b.WithFileFormat(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeRotate(r *reader) model.Node {
	b := model.NewRotateBuilder()
	if v, ok := r.elem("nameColumn"); ok {
		b.WithNameColumn(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elem("valueColumn"); ok {
		b.WithValueColumn(v)
	}
	if v, ok := r.elems("columnList"); ok {
		b.WithColumnList(v)
	}
	if v, ok := r.elem("pivotColumn"); ok {
		b.WithPivotColumn(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.elems("columnAlias"); ok {
		b.WithColumnAlias(v)
	}
	if v, ok := r.elem("aggregate"); ok {
		b.WithAggregate(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeEdge(r *reader) model.Node {
	b := model.NewEdgeBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.elem("generator"); ok {
		b.WithGenerator(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.elems("columnAlias"); ok {
		b.WithColumnAlias(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeAttr(r *reader) model.Node {
	b := model.NewAttrBuilder()
	if v, ok := r.str("oref"); ok {
		b.WithORef(v)
	}
	if v, ok := r.str("refsch"); ok {
		b.WithRefSch(v)
	}
	if v, ok := r.str("fullref"); ok {
		b.WithFullRef(v)
	}
	if v, ok := r.str("refvar"); ok {
		b.WithRefVar(v)
	}
	if v, ok := r.str("refdb"); ok {
		b.WithRefDB(v)
	}
	if v, ok := r.str("sref"); ok {
		b.WithSRef(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("refds"); ok {
		b.WithRefDs(v)
	}
	if v, ok := r.str("refatt"); ok {
		b.WithRefAtt(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("refoutidx"); ok {
		b.WithRefOutIdx(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeConst(r *reader) model.Node {
	b := model.NewConstBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("value"); ok {
		b.WithValue(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeOp(r *reader) model.Node {
	b := model.NewOpBuilder()
	if v, ok := r.str("nonANSI"); ok {
		b.WithNonANSI(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeFunc(r *reader) model.Node {
	b := model.NewFuncBuilder()
	if v, ok := r.elems("partition"); ok {
		b.WithPartition(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elem("withinGroup"); ok {
		b.WithWithinGroup(v)
	}
	if v, ok := r.str("name"); ok {
		b.WithName(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	if v, ok := r.str("subType"); ok {
		b.WithSubType(v)
	}
	if v, ok := one[*model.Sort](r, "sort", "Sort"); ok {
		b.WithSort(v)
	}
	if v, ok := r.str("quantifier"); ok {
		b.WithQuantifier(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := one[*model.Frame](r, "frame", "Frame"); ok {
		b.WithFrame(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeCast(r *reader) model.Node {
	b := model.NewCastBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("dataType"); ok {
		b.WithDataType(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeCase(r *reader) model.Node {
	b := model.NewCaseBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := one[*model.Else](r, "Else", "Else"); ok {
		b.WithElse(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	if v, ok := r.elems("when"); ok {
		b.WithWhen(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeWhen(r *reader) model.Node {
	b := model.NewWhenBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	if v, ok := one[*model.Then](r, "then", "Then"); ok {
		b.WithThen(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeThen(r *reader) model.Node {
	b := model.NewThenBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeElse(r *reader) model.Node {
	b := model.NewElseBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeStructRef(r *reader) model.Node {
	b := model.NewStructRefBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("refpath"); ok {
		b.WithRefPath(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeAsterisk(r *reader) model.Node {
	b := model.NewAsteriskBuilder()
	if v, ok := r.str("refsch"); ok {
		b.WithRefSch(v)
	}
	if v, ok := r.str("fullref"); ok {
		b.WithFullRef(v)
	}
	if v, ok := r.str("refdb"); ok {
		b.WithRefDB(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("refds"); ok {
		b.WithRefDs(v)
	}
	if v, ok := r.str("refatt"); ok {
		b.WithRefAtt(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeArray(r *reader) model.Node {
	b := model.NewArrayBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.elems("items"); ok {
		b.WithItems(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeRow(r *reader) model.Node {
	b := model.NewRowBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.elems("exprs"); ok {
		b.WithExprs(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodePosition(r *reader) model.Node {
	b := model.NewPositionBuilder()
	if v, ok := r.elem("string"); ok {
		b.WithStr(v)
	}
	if v, ok := r.elem("subString"); ok {
		b.WithSubStr(v)
	}
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeCurrent(r *reader) model.Node {
	b := model.NewCurrentBuilder()
	if v, ok := r.str("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("alias"); ok {
		b.WithAlias(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.str("direction"); ok {
		b.WithDirection(v)
	}
	return b.Build()
}

func decodeWrappedExpr(r *reader) model.Node {
	b := model.NewWrappedExprBuilder()
	if v, ok := r.elem("expr"); ok {
		b.WithExpr(v)
	}
	return b.Build()
}

func decodeDBOHier(r *reader) model.Node {
	b := model.NewDBOHierBuilder()
	if v, ok := r.elems("dbo"); ok {
		b.WithDBOs(v)
	}
	return b.Build()
}

func decodeDBO(r *reader) model.Node {
	b := model.NewDBOBuilder()
	if v, ok := r.elems("dbo"); ok {
		b.WithDBOs(v)
	}
	if v, ok := r.str("name"); ok {
		b.WithName(v)
	}
	if v, ok := r.str("index"); ok {
		b.WithIndex(v)
	}
	if v, ok := r.str("dtype"); ok {
		b.WithDType(v)
	}
	if v, ok := r.str("constraint"); ok {
		b.WithConstraint(v)
	}
	if v, ok := r.str("oid"); ok {
		b.WithOID(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	return b.Build()
}

func decodeAntiPatterns(r *reader) model.Node {
	b := model.NewAntiPatternsBuilder()
	if v, ok := r.elems("antiPattern"); ok {
		b.WithAntiPatterns(v)
	}
	return b.Build()
}

func decodeAntiPattern(r *reader) model.Node {
	b := model.NewAntiPatternBuilder()
	if v, ok := r.str("severity"); ok {
		b.WithSeverity(v)
	}
	if v, ok := r.str("readability"); ok {
		b.WithReadability(v)
	}
	if v, ok := r.str("correctness"); ok {
		b.WithCorrectness(v)
	}
	if v, ok := r.str("performance"); ok {
		b.WithPerformance(v)
	}
	if v, ok := r.strs("pos"); ok {
		b.WithPos(v)
	}
	if v, ok := r.str("link"); ok {
		b.WithLink(v)
	}
	if v, ok := r.str("type"); ok {
		b.WithType(v)
	}
	if v, ok := r.str("name"); ok {
		b.WithName(v)
	}
	return b.Build()
}
