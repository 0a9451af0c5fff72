package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkurien/skillpath/internal/skills"
)

// sqliteSkillRepo implements SkillRepo over raw SQL.
type sqliteSkillRepo struct {
	db *sql.DB
}

func (r *sqliteSkillRepo) LoadAll(ctx context.Context) ([]skills.Skill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, proficiency, created_at FROM skills ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	var out []skills.Skill
	index := make(map[string]int)
	for rows.Next() {
		var s skills.Skill
		var prof int
		if err := rows.Scan(&s.ID, &s.Name, &prof, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		s.Proficiency = skills.Proficiency(prof)
		index[s.ID] = len(out)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}

	if err := r.loadChecklists(ctx, out, index); err != nil {
		return nil, err
	}
	if err := r.loadTeachingEvals(ctx, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteSkillRepo) loadChecklists(ctx context.Context, out []skills.Skill, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, skill_id, text, completed FROM checklist_items ORDER BY skill_id, position, id`)
	if err != nil {
		return fmt.Errorf("query checklist items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item skills.ChecklistItem
		var skillID string
		var completed int
		if err := rows.Scan(&item.ID, &skillID, &item.Text, &completed); err != nil {
			return fmt.Errorf("scan checklist item: %w", err)
		}
		item.Completed = completed != 0
		if i, ok := index[skillID]; ok {
			out[i].Checklist = append(out[i].Checklist, item)
		}
	}
	return rows.Err()
}

func (r *sqliteSkillRepo) loadTeachingEvals(ctx context.Context, out []skills.Skill, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, skill_id, explanation, score, feedback, created_at
		 FROM teaching_evals ORDER BY skill_id, created_at, id`)
	if err != nil {
		return fmt.Errorf("query teaching evals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eval skills.TeachingEvaluation
		var skillID string
		if err := rows.Scan(&eval.ID, &skillID, &eval.Explanation, &eval.Score, &eval.Feedback, &eval.CreatedAt); err != nil {
			return fmt.Errorf("scan teaching eval: %w", err)
		}
		if i, ok := index[skillID]; ok {
			out[i].TeachingEvals = append(out[i].TeachingEvals, eval)
		}
	}
	return rows.Err()
}

func (r *sqliteSkillRepo) Insert(ctx context.Context, s skills.Skill) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (id, name, proficiency, created_at) VALUES (?, ?, ?, ?)`,
		s.ID, s.Name, int(s.Proficiency), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert skill %q: %w", s.Name, err)
	}
	return nil
}

func (r *sqliteSkillRepo) SetProficiency(ctx context.Context, id string, p skills.Proficiency) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE skills SET proficiency = ? WHERE id = ?`, int(p), id)
	if err != nil {
		return fmt.Errorf("update proficiency: %w", err)
	}
	return requireRow(res, "skill", id)
}

func (r *sqliteSkillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return requireRow(res, "skill", id)
}

func (r *sqliteSkillRepo) InsertChecklistItem(ctx context.Context, skillID string, item skills.ChecklistItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO checklist_items (id, skill_id, text, completed, position)
		 VALUES (?, ?, ?, ?, (SELECT COUNT(*) FROM checklist_items WHERE skill_id = ?))`,
		item.ID, skillID, item.Text, boolInt(item.Completed), skillID)
	if err != nil {
		return fmt.Errorf("insert checklist item: %w", err)
	}
	return nil
}

func (r *sqliteSkillRepo) SetChecklistItemCompleted(ctx context.Context, itemID string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE checklist_items SET completed = ? WHERE id = ?`, boolInt(completed), itemID)
	if err != nil {
		return fmt.Errorf("update checklist item: %w", err)
	}
	return requireRow(res, "checklist item", itemID)
}

func (r *sqliteSkillRepo) AppendTeachingEval(ctx context.Context, skillID string, eval skills.TeachingEvaluation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teaching_evals (id, skill_id, explanation, score, feedback, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		eval.ID, skillID, eval.Explanation, eval.Score, eval.Feedback, eval.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert teaching eval: %w", err)
	}
	return nil
}

func (r *sqliteSkillRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM skills`); err != nil {
		return fmt.Errorf("delete all skills: %w", err)
	}
	return nil
}

func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %q", kind, id)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
