package catalog

// Seed data for the skill catalog. Costs are derived from the tier table so
// rebalancing a tier touches exactly one place.

func sid(b Branch, code string) SkillID {
	return SkillID{Branch: b, Code: code}
}

// seedDefinitions returns every skill definition in the catalog.
func seedDefinitions() []SkillDefinition {
	lf := BranchLeadershipFoundation
	pc := BranchPoliticallyConnected

	defs := []SkillDefinition{
		// Leadership Foundation — carries both grade promotions.
		{ID: sid(lf, "junior-officer-training"), Name: "Junior Officer Training", Tier: 1,
			Bonus: BonusCommandRange, BonusValue: 1},
		{ID: sid(lf, "staff-coordination"), Name: "Staff Coordination", Tier: 2,
			Prerequisites: []SkillID{sid(lf, "junior-officer-training")},
			Bonus:         BonusSupplyEconomy, BonusValue: 5},
		{ID: sid(lf, "senior-officer-school"), Name: "Senior Officer School", Tier: 2,
			Prerequisites: []SkillID{sid(lf, "junior-officer-training")},
			MinGrade:      GradeJunior, IsPromotion: true,
			Bonus: BonusCommandRange, BonusValue: 1},
		{ID: sid(lf, "frontline-experience"), Name: "Frontline Experience", Tier: 3,
			Prerequisites: []SkillID{sid(lf, "senior-officer-school")},
			MinGrade:      GradeSenior,
			Bonus:         BonusSoftAttack, BonusValue: 3},
		{ID: sid(lf, "general-staff-academy"), Name: "General Staff Academy", Tier: 4,
			Prerequisites: []SkillID{sid(lf, "senior-officer-school")},
			MinGrade:      GradeSenior, IsPromotion: true,
			Bonus: BonusCommandRange, BonusValue: 1},
		{ID: sid(lf, "stavka-liaison"), Name: "Stavka Liaison", Tier: 5,
			Prerequisites: []SkillID{sid(lf, "general-staff-academy")},
			MinGrade:      GradeTop,
			Bonus:         BonusMoraleRecovery, BonusValue: 10},

		// Politically Connected Foundation.
		{ID: sid(pc, "party-membership"), Name: "Party Membership", Tier: 1,
			Bonus: BonusRequisitionDiscount, BonusValue: 5},
		{ID: sid(pc, "komsomol-network"), Name: "Komsomol Network", Tier: 2,
			Prerequisites: []SkillID{sid(pc, "party-membership")},
			Bonus:         BonusReplacementRate, BonusValue: 5},
		{ID: sid(pc, "commissar-patronage"), Name: "Commissar Patronage", Tier: 3,
			Prerequisites: []SkillID{sid(pc, "komsomol-network")},
			Bonus:         BonusMoraleRecovery, BonusValue: 5},
		{ID: sid(pc, "nomenklatura-standing"), Name: "Nomenklatura Standing", Tier: 4,
			Prerequisites: []SkillID{sid(pc, "commissar-patronage")},
			MinGrade:      GradeSenior,
			Bonus:         BonusRequisitionDiscount, BonusValue: 10},
		{ID: sid(pc, "central-committee-favor"), Name: "Central Committee Favor", Tier: 5,
			Prerequisites: []SkillID{sid(pc, "nomenklatura-standing")},
			MinGrade:      GradeTop,
			Bonus:         BonusReplacementRate, BonusValue: 10},
	}

	defs = append(defs, doctrine(BranchArmoredDoctrine, [4]doctrineSkill{
		{"shock-tank-corps", "Shock Tank Corps", BonusHardAttack, 5},
		{"deep-battle-maneuver", "Deep Battle Maneuver", BonusMovementRate, 2},
		{"tank-guards-elite", "Tank Guards Elite", BonusHardDefense, 5},
		{"operational-breakthrough", "Operational Breakthrough", BonusHardAttack, 10},
	})...)
	defs = append(defs, doctrine(BranchInfantryDoctrine, [4]doctrineSkill{
		{"rifle-division-drill", "Rifle Division Drill", BonusSoftAttack, 5},
		{"urban-assault-tactics", "Urban Assault Tactics", BonusSoftDefense, 5},
		{"guards-infantry-elite", "Guards Infantry Elite", BonusMoraleRecovery, 5},
		{"echeloned-offensive", "Echeloned Offensive", BonusSoftAttack, 10},
	})...)
	defs = append(defs, doctrine(BranchArtilleryDoctrine, [4]doctrineSkill{
		{"massed-battery-fire", "Massed Battery Fire", BonusSoftAttack, 5},
		{"counter-battery-radar", "Counter-Battery Radar", BonusSpottingRange, 2},
		{"rocket-artillery-corps", "Rocket Artillery Corps", BonusHardAttack, 5},
		{"fire-destruction-plan", "Fire Destruction Plan", BonusSoftAttack, 10},
	})...)
	defs = append(defs, doctrine(BranchAirDefenseDoctrine, [4]doctrineSkill{
		{"mobile-sam-screen", "Mobile SAM Screen", BonusAirDefense, 5},
		{"radar-early-warning", "Radar Early Warning", BonusSpottingRange, 2},
		{"layered-air-umbrella", "Layered Air Umbrella", BonusAirDefense, 5},
		{"integrated-air-network", "Integrated Air Network", BonusAirDefense, 10},
	})...)
	defs = append(defs, doctrine(BranchAirborneDoctrine, [4]doctrineSkill{
		{"jump-qualification", "Jump Qualification", BonusAirborneAssault, 1},
		{"light-infantry-tactics", "Light Infantry Tactics", BonusSoftAttack, 3},
		{"night-drop-operations", "Night Drop Operations", BonusNightOperations, 1},
		{"vdv-elite-corps", "VDV Elite Corps", BonusSoftAttack, 8},
	})...)
	defs = append(defs, doctrine(BranchAirMobileDoctrine, [4]doctrineSkill{
		{"helicopter-assault-training", "Helicopter Assault Training", BonusAirMobileAssault, 1},
		{"rapid-redeployment", "Rapid Redeployment", BonusMovementRate, 3},
		{"gunship-coordination", "Gunship Coordination", BonusHardAttack, 3},
		{"airland-shock-brigade", "Airland Shock Brigade", BonusMovementRate, 5},
	})...)
	defs = append(defs, doctrine(BranchIntelligenceDoctrine, [4]doctrineSkill{
		{"signals-intercept", "Signals Intercept", BonusSignalDecryption, 1},
		{"deep-reconnaissance", "Deep Reconnaissance", BonusSpottingRange, 3},
		{"maskirovka-planning", "Maskirovka Planning", BonusConcealment, 5},
		{"agent-network", "Agent Network", BonusSpottingRange, 5},
	})...)

	defs = append(defs, specialization(BranchCombinedArmsSpecialization, [3]doctrineSkill{
		{"combined-arms-coordination", "Combined Arms Coordination", BonusCommandRange, 1},
		{"all-arms-battlegroup", "All-Arms Battlegroup", BonusHardAttack, 3},
		{"deep-operation-mastery", "Deep Operation Mastery", BonusMovementRate, 2},
	})...)
	defs = append(defs, specialization(BranchEngineeringSpecialization, [3]doctrineSkill{
		{"combat-engineering", "Combat Engineering", BonusRiverCrossing, 1},
		{"fortified-zone-construction", "Fortified Zone Construction", BonusHardDefense, 5},
		{"pontoon-bridging-corps", "Pontoon Bridging Corps", BonusMovementRate, 2},
	})...)
	defs = append(defs, specialization(BranchSpecialForcesSpecialization, [3]doctrineSkill{
		{"spetsnaz-detachment", "Spetsnaz Detachment", BonusInfiltration, 1},
		{"sabotage-operations", "Sabotage Operations", BonusSoftAttack, 5},
		{"deep-strike-teams", "Deep Strike Teams", BonusSpottingRange, 3},
	})...)
	defs = append(defs, specialization(BranchPoliticalOfficerSpecialization, [3]doctrineSkill{
		{"zampolit-authority", "Zampolit Authority", BonusMoraleRecovery, 5},
		{"ideological-indoctrination", "Ideological Indoctrination", BonusSoftDefense, 3},
		{"punitive-discipline", "Punitive Discipline", BonusReplacementRate, 5},
	})...)

	// Fill costs from the tier table.
	for i := range defs {
		cost, err := TierCost(defs[i].Tier)
		if err != nil {
			panic("catalog seed: " + err.Error())
		}
		defs[i].Cost = cost
	}
	return defs
}

type doctrineSkill struct {
	code  string
	name  string
	bonus BonusType
	value float64
}

// doctrine expands the shared doctrine-branch shape: a tier-1 root, a tier-2
// follow-on, a tier-3 skill gated on Senior grade, and a tier-5 capstone
// gated on Top grade.
func doctrine(b Branch, s [4]doctrineSkill) []SkillDefinition {
	return []SkillDefinition{
		{ID: sid(b, s[0].code), Name: s[0].name, Tier: 1,
			Bonus: s[0].bonus, BonusValue: s[0].value},
		{ID: sid(b, s[1].code), Name: s[1].name, Tier: 2,
			Prerequisites: []SkillID{sid(b, s[0].code)},
			Bonus:         s[1].bonus, BonusValue: s[1].value},
		{ID: sid(b, s[2].code), Name: s[2].name, Tier: 3,
			Prerequisites: []SkillID{sid(b, s[1].code)},
			MinGrade:      GradeSenior,
			Bonus:         s[2].bonus, BonusValue: s[2].value},
		{ID: sid(b, s[3].code), Name: s[3].name, Tier: 5,
			Prerequisites: []SkillID{sid(b, s[2].code)},
			MinGrade:      GradeTop,
			Bonus:         s[3].bonus, BonusValue: s[3].value},
	}
}

// specialization expands the shared specialization-branch shape: tiers 2-4,
// with the upper two skills gated on Senior grade.
func specialization(b Branch, s [3]doctrineSkill) []SkillDefinition {
	return []SkillDefinition{
		{ID: sid(b, s[0].code), Name: s[0].name, Tier: 2,
			Bonus: s[0].bonus, BonusValue: s[0].value},
		{ID: sid(b, s[1].code), Name: s[1].name, Tier: 3,
			Prerequisites: []SkillID{sid(b, s[0].code)},
			MinGrade:      GradeSenior,
			Bonus:         s[1].bonus, BonusValue: s[1].value},
		{ID: sid(b, s[2].code), Name: s[2].name, Tier: 4,
			Prerequisites: []SkillID{sid(b, s[1].code)},
			MinGrade:      GradeSenior,
			Bonus:         s[2].bonus, BonusValue: s[2].value},
	}
}

func init() {
	reg = buildRegistry(seedDefinitions())
	if err := Validate(); err != nil {
		panic(err)
	}
}
