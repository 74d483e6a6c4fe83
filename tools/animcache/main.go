package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/creature_retargeter/animcache"
	"github.com/mogaika/creature_retargeter/animdata"
	"github.com/mogaika/creature_retargeter/config"
	"github.com/mogaika/creature_retargeter/retarget"
	"github.com/mogaika/creature_retargeter/utils"
	"github.com/mogaika/creature_retargeter/utils/gltfutils"
)

const usage = `Usage: animcache [-config file] [-meshes dir] <command> [flags]

Commands:
  retarget  clone a creature project under a new name
  dump      print a cached project
  export    write the root motion of a creature to gltf
  crc       print animation tool crcs of strings
  verify    check that both merged files survive a read/write cycle
`

func main() {
	var configPath, meshDir, logLevel string
	flag.StringVar(&configPath, "config", config.DefaultFile, "Path to yaml config")
	flag.StringVar(&meshDir, "meshes", "meshes", "Path to folder with merged animation cache files")
	flag.StringVar(&logLevel, "loglevel", "", "Log level override (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		utils.Log().Fatalf("%v", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		utils.Log().Fatalf("%v", err)
	}
	if err := cfg.Apply(); err != nil {
		utils.Log().Fatalf("%v", err)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	switch cmd {
	case "retarget":
		err = runRetarget(cfg, meshDir, args)
	case "dump":
		err = runDump(meshDir, args)
	case "export":
		err = runExport(meshDir, args)
	case "crc":
		runCrc(args)
	case "verify":
		err = runVerify(meshDir)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		utils.Log().Fatalf("%s: %v", cmd, err)
	}
}

func readLinesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open %q", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if l := strings.TrimSpace(scanner.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, scanner.Err()
}

func runRetarget(cfg *config.Config, meshDir string, args []string) error {
	fs := flag.NewFlagSet("retarget", flag.ExitOnError)
	var job retarget.Job
	var animsList string
	fs.StringVar(&job.Source, "src", "", "Source creature project, like BearProject")
	fs.StringVar(&job.SourceName, "name", "", "Creature name used in asset names (default: source without 'project')")
	fs.StringVar(&job.Target, "target", "", "Target creature name (random when empty)")
	fs.StringVar(&job.OutputDir, "out", ".", "Output directory")
	fs.StringVar(&animsList, "anims", "", "File listing source animation paths relative to meshes, one per line")
	fs.BoolVar(&job.SaveMerged, "merged", cfg.SaveMerged, "Also write both merged files to the output directory")
	fs.Parse(args)

	if job.Source == "" {
		fs.PrintDefaults()
		return errors.New("-src is required")
	}
	if animsList != "" {
		files, err := readLinesFile(animsList)
		if err != nil {
			return err
		}
		job.AnimationFiles = files
	}

	cache, err := animcache.NewFromMeshDir(meshDir)
	if err != nil {
		return err
	}
	rt := retarget.NewRetargeter(cache, retarget.DefaultAliases().Merge(cfg.Aliases))
	res, err := rt.Run(job)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s in %s\n", res.Project, job.OutputDir)
	return nil
}

func runDump(meshDir string, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	project := fs.String("project", "", "Project to dump (lists projects when empty)")
	fs.Parse(args)

	cache, err := animcache.NewFromMeshDir(meshDir)
	if err != nil {
		return err
	}
	if *project == "" {
		for _, e := range cache.Creatures() {
			fmt.Printf("creature %s\n", e.Name)
		}
		for _, e := range cache.MiscEntries() {
			fmt.Printf("project  %s\n", e.Name)
		}
		return nil
	}

	entry, ok := cache.Entry(*project)
	if !ok {
		return errors.Wrapf(animcache.ErrProjectNotFound, "%q, closest creatures: %v",
			*project, cache.Suggest(*project, 3))
	}
	fmt.Print(utils.SDump(entry.Block))
	if entry.IsCreature() {
		fmt.Print(utils.SDump(entry.AttackList))
	}
	for _, clip := range entry.Block.Clips {
		md, ok := cache.Movement(entry.Name, clip.Name)
		if !ok {
			continue
		}
		fmt.Printf("%s: duration %v\n", clip.Name, md.Duration)
		for _, t := range md.Translations {
			fmt.Printf("  %8v move %v\n", t.Time, t.Translation)
		}
		for _, r := range md.Rotations {
			fmt.Printf("  %8v turn %v deg\n", r.Time, utils.RadiansToDegreeV3(utils.QuatToEuler(r.Rotation)))
		}
	}
	return nil
}

func runExport(meshDir string, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	project := fs.String("project", "", "Creature project to export")
	out := fs.String("o", "", "Output file, .glb or .gltf (default: <project>.glb)")
	fs.Parse(args)

	cache, err := animcache.NewFromMeshDir(meshDir)
	if err != nil {
		return err
	}
	doc, err := cache.ExportRootMotionGLTF(*project)
	if err != nil {
		return err
	}
	if *out == "" {
		*out = *project + ".glb"
	}
	if err := gltfutils.Save(doc, *out); err != nil {
		return err
	}
	utils.Log().Infof("Exported %d clips to %q", len(doc.Nodes), *out)
	return nil
}

func runCrc(args []string) {
	for _, s := range args {
		fmt.Printf("%s\t%s\t%s\n", utils.HavokCRCString(s), retarget.CRCValue(s), s)
	}
}

// firstDifference returns the 1-based line where a and b diverge, or 0 when equal.
func firstDifference(a, b string) (int, string, string) {
	if a == b {
		return 0, "", ""
	}
	al, bl := strings.Split(a, "\n"), strings.Split(b, "\n")
	for i := 0; ; i++ {
		var x, y string
		if i < len(al) {
			x = al[i]
		}
		if i < len(bl) {
			y = bl[i]
		}
		if x != y || i >= len(al) || i >= len(bl) {
			return i + 1, x, y
		}
	}
}

func runVerify(meshDir string) error {
	failed := 0
	for _, f := range []struct {
		name  string
		block animdata.Block
	}{
		{animdata.AnimationDataMergedFile, animdata.NewAnimDataFile()},
		{animdata.AnimationSetDataMergedFile, &animdata.AnimSetDataFile{}},
	} {
		path := filepath.Join(meshDir, f.name)
		original, err := ioutil.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "Failed to read %q", path)
		}
		if err := animdata.ReadFile(path, f.block); err != nil {
			return err
		}
		written, err := animdata.BlockString(f.block)
		if err != nil {
			return err
		}

		if line, want, got := firstDifference(string(original), written); line != 0 {
			utils.Log().Errorf("%s: line %d differs: %q was written as %q", f.name, line, want, got)
			failed++
		} else {
			utils.Log().Infof("%s: ok", f.name)
		}
	}
	if failed != 0 {
		return errors.Errorf("%d files do not round trip", failed)
	}
	return nil
}
