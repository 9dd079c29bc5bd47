package normalize

import (
	"github.com/paull87/mo-sql-parsing/pkg/core"
)

// normStmt renders a statement node into its canonical mapping.
func normStmt(stmt core.Statement) map[string]any {
	switch s := stmt.(type) {
	case *core.SelectStmt:
		return normSelect(s)
	case *core.SetOpStmt:
		return normSetOp(s)
	case *core.WithStmt:
		return normWith(s)
	case *core.InsertStmt:
		return normInsert(s)
	case *core.UpdateStmt:
		return normUpdate(s)
	case *core.DeleteStmt:
		return normDelete(s)
	case *core.CreateTableStmt:
		return normCreateTable(s)
	default:
		return nil
	}
}

func normSelect(sel *core.SelectStmt) map[string]any {
	result := map[string]any{}

	selectKey := "select"
	if sel.Distinct {
		selectKey = "select_distinct"
	}
	result[selectKey] = selectItems(sel.Items)

	if len(sel.DistinctOn) > 0 {
		items := make([]any, len(sel.DistinctOn))
		for i, e := range sel.DistinctOn {
			items[i] = map[string]any{"value": normExpr(e)}
		}
		result["distinct_on"] = collapse(items)
	}

	if len(sel.From) > 0 {
		result["from"] = fromShape(sel.From)
	}
	if sel.Where != nil {
		result["where"] = normExpr(sel.Where)
	}
	if len(sel.GroupBy) > 0 {
		items := make([]any, len(sel.GroupBy))
		for i, e := range sel.GroupBy {
			items[i] = map[string]any{"value": normExpr(e)}
		}
		result["groupby"] = collapse(items)
	}
	if sel.Having != nil {
		result["having"] = normExpr(sel.Having)
	}
	if sel.Qualify != nil {
		result["qualify"] = normExpr(sel.Qualify)
	}
	if len(sel.Windows) > 0 {
		defs := make([]any, len(sel.Windows))
		for i, def := range sel.Windows {
			defs[i] = map[string]any{"name": def.Name, "value": windowShape(def.Spec)}
		}
		result["window"] = collapse(defs)
	}
	if len(sel.OrderBy) > 0 {
		result["orderby"] = orderShape(sel.OrderBy)
	}
	if sel.Limit != nil {
		result["limit"] = normExpr(sel.Limit)
	}
	if sel.Offset != nil {
		result["offset"] = normExpr(sel.Offset)
	}
	if sel.Locking != nil {
		result["locking"] = lockingShape(sel.Locking)
	}

	return result
}

// selectItems renders the projection list. A lone unqualified star stays
// bare; everything else is wrapped with value and optional name.
func selectItems(items []core.SelectItem) any {
	out := make([]any, len(items))
	for i, item := range items {
		value := normExpr(item.Expr)
		if item.Alias == "" {
			if value == "*" {
				out[i] = "*"
				continue
			}
			out[i] = map[string]any{"value": value}
			continue
		}
		out[i] = map[string]any{"value": value, "name": item.Alias}
	}
	return collapse(out)
}

// fromShape renders the FROM list: plain tables stay bare strings, aliased
// or sampled sources become mappings, joins key the source by the join words.
func fromShape(items []core.FromItem) any {
	out := make([]any, len(items))
	for i, item := range items {
		source := sourceShape(item.Source)
		if item.Join == "" {
			out[i] = source
			continue
		}

		join := item.Join
		if join == "inner join" {
			join = "join"
		}
		entry := map[string]any{join: source}
		if item.On != nil {
			entry["on"] = normExpr(item.On)
		}
		if len(item.Using) > 0 {
			using := make([]any, len(item.Using))
			for j, u := range item.Using {
				using[j] = normExpr(u)
			}
			entry["using"] = collapse(using)
		}
		out[i] = entry
	}
	return collapse(out)
}

// sourceShape renders one table source.
func sourceShape(ref core.TableRef) any {
	switch src := ref.(type) {
	case *core.TableName:
		name := identString(src.Name)
		if src.Alias == "" && src.Sample == nil {
			return name
		}
		entry := map[string]any{"value": name}
		if src.Alias != "" {
			entry["name"] = src.Alias
		}
		if src.Sample != nil {
			entry["tablesample"] = sampleShape(src.Sample)
		}
		return entry

	case *core.SubqueryTable:
		entry := map[string]any{"value": normStmt(src.Query)}
		if src.Alias != "" {
			entry["name"] = src.Alias
		}
		if src.Lateral {
			return map[string]any{"lateral": entry}
		}
		return entry

	default:
		return nil
	}
}

func sampleShape(sample *core.TableSample) any {
	shape := map[string]any{"method": sample.Method}
	value := normExpr(sample.Value)
	switch {
	case sample.Rows:
		shape["rows"] = value
	default:
		shape["percent"] = value
	}
	return shape
}

func lockingShape(clause *core.LockingClause) any {
	shape := map[string]any{"mode": clause.Mode}
	if clause.Table != nil {
		table := map[string]any{"value": identString(clause.Table)}
		if clause.Nowait {
			table["nowait"] = true
		}
		if clause.SkipLocked {
			table["skip_locked"] = true
		}
		if len(table) == 1 {
			shape["table"] = table["value"]
		} else {
			shape["table"] = table
		}
	}
	return shape
}

func normSetOp(op *core.SetOpStmt) map[string]any {
	key := op.Op
	if op.All {
		key += "_all"
	}
	return map[string]any{key: []any{normStmt(op.Left), normStmt(op.Right)}}
}

// normWith merges the body's mapping with a with key at the top level.
func normWith(with *core.WithStmt) map[string]any {
	result := normStmt(with.Body)
	if result == nil {
		return nil
	}

	bindings := make([]any, len(with.CTEs))
	for i, cte := range with.CTEs {
		bindings[i] = map[string]any{"name": cte.Name, "value": normStmt(cte.Query)}
	}

	key := "with"
	if with.Recursive {
		key = "with_recursive"
	}
	result[key] = collapse(bindings)
	return result
}

func normInsert(ins *core.InsertStmt) map[string]any {
	result := map[string]any{"insert": identString(ins.Table)}

	if len(ins.Columns) > 0 {
		result["columns"] = collapseStrings(ins.Columns)
	}

	switch {
	case ins.Query != nil:
		result["query"] = normStmt(ins.Query)
	case len(ins.Values) > 0:
		rows := make([]any, len(ins.Values))
		for i, row := range ins.Values {
			items := make([]any, len(row))
			for j, v := range row {
				items[j] = map[string]any{"value": normExpr(v)}
			}
			rows[i] = collapse(items)
		}
		result["query"] = map[string]any{"select": collapse(rows)}
	}

	if len(ins.Returning) > 0 {
		result["returning"] = returningShape(ins.Returning)
	}
	return result
}

// returningShape reproduces the corpus form for RETURNING projections: the
// keyword itself lands under value and the projected expression under name.
func returningShape(items []core.SelectItem) any {
	out := make([]any, len(items))
	for i, item := range items {
		entry := map[string]any{"value": "RETURNING"}
		value := normExpr(item.Expr)
		if item.Alias != "" {
			entry["name"] = item.Alias
			entry["value"] = value
		} else {
			entry["name"] = value
		}
		out[i] = entry
	}
	return collapse(out)
}

func normUpdate(upd *core.UpdateStmt) map[string]any {
	result := map[string]any{"update": identString(upd.Table)}

	set := make(map[string]any, len(upd.Set))
	for _, item := range upd.Set {
		set[item.Column] = normExpr(item.Value)
	}
	result["set"] = set

	if upd.Where != nil {
		result["where"] = normExpr(upd.Where)
	}
	if len(upd.Returning) > 0 {
		result["returning"] = returningShape(upd.Returning)
	}
	return result
}

func normDelete(del *core.DeleteStmt) map[string]any {
	result := map[string]any{"delete": identString(del.Table)}
	if del.Where != nil {
		result["where"] = normExpr(del.Where)
	}
	if len(del.Returning) > 0 {
		result["returning"] = returningShape(del.Returning)
	}
	return result
}

func normCreateTable(create *core.CreateTableStmt) map[string]any {
	body := map[string]any{"name": identString(create.Name)}

	if len(create.Columns) > 0 {
		cols := make([]any, len(create.Columns))
		for i, col := range create.Columns {
			cols[i] = columnShape(col)
		}
		body["columns"] = collapse(cols)
	}
	if len(create.Constraints) > 0 {
		constraints := make([]any, len(create.Constraints))
		for i, c := range create.Constraints {
			constraints[i] = constraintShape(c)
		}
		body["constraint"] = collapse(constraints)
	}

	return map[string]any{"create table": body}
}

func columnShape(col core.ColumnDef) any {
	shape := map[string]any{
		"name": col.Name,
		"type": typeShape(col.Type),
	}
	if col.NotNull {
		shape["nullable"] = false
	}
	if col.Default != nil {
		shape["default"] = normExpr(col.Default)
	}
	if col.PrimaryKey {
		shape["primary_key"] = true
	}
	if col.Unique {
		shape["unique"] = true
	}
	if col.Identity != nil {
		identity := map[string]any{"generated": col.Identity.Generated}
		if col.Identity.StartWith != nil {
			identity["start_with"] = normExpr(col.Identity.StartWith)
		}
		shape["identity"] = identity
	}
	return shape
}

func constraintShape(c core.TableConstraint) any {
	shape := map[string]any{}
	if c.Name != "" {
		shape["name"] = c.Name
	}

	switch {
	case len(c.PrimaryKey) > 0:
		shape["primary_key"] = map[string]any{"columns": collapseStrings(c.PrimaryKey)}
	case len(c.Unique) > 0:
		shape["unique"] = map[string]any{"columns": collapseStrings(c.Unique)}
	case c.ForeignKey != nil:
		fk := map[string]any{
			"columns": collapseStrings(c.ForeignKey.Columns),
			"references": map[string]any{
				"table":   identString(c.ForeignKey.RefTable),
				"columns": collapseStrings(c.ForeignKey.RefColumns),
			},
		}
		if c.ForeignKey.OnDelete != "" {
			fk["on_delete"] = c.ForeignKey.OnDelete
		}
		if c.ForeignKey.OnUpdate != "" {
			fk["on_update"] = c.ForeignKey.OnUpdate
		}
		shape["foreign_key"] = fk
	case c.Check != nil:
		shape["check"] = normExpr(c.Check)
	}

	return shape
}

func collapseStrings(items []string) any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return collapse(out)
}
