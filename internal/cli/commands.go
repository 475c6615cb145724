package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/jmgilman/go/bitbucket"
	"github.com/jmgilman/go/bitbucket/errors"
	"github.com/spf13/cobra"
)

// repoCommand creates the "repo" command.
func (c *CLI) repoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repo",
		Short: "Show the configured repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			repo := client.Repository()
			if err := repo.Get(cmd.Context()); err != nil {
				return err
			}
			return c.print(repo.Data(), func(w io.Writer) {
				renderFields(w, repo.FullName(), [][2]string{
					{"Name", repo.Data().Name},
					{"Private", yesNo(repo.IsPrivate())},
					{"Fork", yesNo(repo.IsFork())},
					{"Clone", repo.CloneURL()},
					{"SSH", repo.SSHURL()},
					{"Browse", repo.HTMLURL()},
				})
			})
		},
	}
}

// reposCommand creates the "repos" command.
func (c *CLI) reposCommand() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List the repositories of the owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			repos, err := client.Repositories(cmd.Context(), bitbucket.WithRole(bitbucket.Role(role)))
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("listed repositories", "count", len(repos))
			return c.print(repos, func(w io.Writer) {
				renderTable(w, []string{"Slug", "Name", "Visibility", "Clone"}, repositoryRows(repos))
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "filter by role (ignored by Bitbucket Server)")
	return cmd
}

// teamCommand creates the "team" command.
func (c *CLI) teamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "Show the project that owns the repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			team, err := client.Team(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(team, func(w io.Writer) {
				if team == nil {
					fprintf(w, "%s has no project\n", client.Owner())
					return
				}
				renderFields(w, team.Key, [][2]string{
					{"Name", team.Name},
					{"Description", team.Description},
					{"Public", yesNo(team.Public)},
					{"Browse", team.HTMLURL},
				})
			})
		},
	}
}

// branchesCommand creates the "branches" command.
func (c *CLI) branchesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List the branches of the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			branches, err := client.Repository().Branches(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(branches, func(w io.Writer) {
				for _, b := range branches {
					marker := " "
					if b.IsDefault {
						marker = "*"
					}
					fprintf(w, "%s %s\n", marker, b.Name)
				}
			})
		},
	}
}

// prsCommand creates the "prs" command.
func (c *CLI) prsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prs",
		Short: "List the open pull requests of the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			prs, err := client.Repository().PullRequests(cmd.Context())
			if err != nil {
				return err
			}
			data := make([]*bitbucket.PullRequestData, len(prs))
			for i, pr := range prs {
				data[i] = pr.Data()
			}
			return c.print(data, func(w io.Writer) {
				renderTable(w, []string{"ID", "Title", "Branches", "Author", "State"}, pullRequestRows(data))
			})
		},
	}
}

// prCommand creates the "pr" command.
func (c *CLI) prCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pr <id>",
		Short: "Show a pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.WithContext(
					errors.Wrap(err, errors.CodeInvalidInput, "pull request id must be a number"),
					"id", args[0],
				)
			}
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			pr, err := client.Repository().PullRequest(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.print(pr.Data(), func(w io.Writer) {
				renderFields(w, "#"+strconv.Itoa(pr.ID())+" "+pr.Title(), [][2]string{
					{"State", pr.State()},
					{"Author", pr.Author()},
					{"From", pr.SourceBranch()},
					{"Into", pr.DestinationBranch()},
					{"Head", pr.SourceFullHash()},
					{"Browse", pr.HTMLURL()},
				})
			})
		},
	}
}

// commitCommand creates the "commit" command.
func (c *CLI) commitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <hash>",
		Short: "Show commit metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			commit, err := client.Repository().Commit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(commit, func(w io.Writer) {
				authored := ""
				if !commit.AuthoredAt.IsZero() {
					authored = commit.AuthoredAt.Format("2006-01-02 15:04:05 MST")
				}
				author := commit.Author
				if commit.AuthorEmail != "" {
					author += " <" + commit.AuthorEmail + ">"
				}
				renderFields(w, commit.Hash, [][2]string{
					{"Author", author},
					{"Date", authored},
					{"Message", commit.Message},
				})
			})
		},
	}
}

// existsCommand creates the "exists" command.
func (c *CLI) existsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <branch> <path>",
		Short: "Report whether a file exists on a branch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			exists := client.Repository().PathExists(cmd.Context(), args[0], args[1])
			return c.print(map[string]bool{"exists": exists}, func(w io.Writer) {
				fprintf(w, "%s\n", strconv.FormatBool(exists))
			})
		},
	}
}

// commentCommand creates the "comment" command.
func (c *CLI) commentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <hash> <text>",
		Short: "Comment on a commit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.Repository().Comment(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("comment posted", "commit", args[0])
			return nil
		},
	}
}

// statusCommand creates the "status" command.
func (c *CLI) statusCommand() *cobra.Command {
	var key, name, url, description string
	cmd := &cobra.Command{
		Use:   "status <hash> <SUCCESSFUL|FAILED|INPROGRESS>",
		Short: "Report a build status for a commit",
		Long:  "Report a build status for a commit. Delivery failures are logged as warnings and never fail the command.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := strings.ToUpper(args[1])
			switch state {
			case bitbucket.BuildStateSuccessful, bitbucket.BuildStateFailed, bitbucket.BuildStateInProgress:
			default:
				return errors.WithContext(
					errors.Newf(errors.CodeInvalidInput, "unknown build state %q", args[1]),
					"state", args[1],
				)
			}

			client, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			return client.Repository().ReportStatus(cmd.Context(), args[0], state,
				bitbucket.WithStatusKey(key),
				bitbucket.WithStatusName(name),
				bitbucket.WithStatusURL(url),
				bitbucket.WithStatusDescription(description),
			)
		},
	}
	cmd.Flags().StringVar(&key, "key", "bbs", "key identifying the build")
	cmd.Flags().StringVar(&name, "name", "", "display name of the build")
	cmd.Flags().StringVar(&url, "url", "", "link to the build result")
	cmd.Flags().StringVar(&description, "description", "", "short description of the result")
	return cmd
}
